package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"bikeshare/internal/config"
	"bikeshare/internal/trips"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(NewCitiesCmd())
}

// NewCitiesCmd lists the configured cities and whether their files exist.
func NewCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the configured cities and their data files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := config.Current().Sources()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CITY\tFILE\tSTATUS")
			for _, city := range trips.KnownCities {
				path, ok := sources.Path(city)
				fmt.Fprintf(w, "%s\t%s\t%s\n", city.Title(), displayPath(path, ok), fileStatus(path, ok))
			}
			return w.Flush()
		},
	}
}

func displayPath(path string, ok bool) string {
	if !ok {
		return "-"
	}
	return path
}

func fileStatus(path string, ok bool) string {
	if !ok {
		return "not configured"
	}
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return "missing"
	case info.IsDir():
		return "not a file"
	default:
		return "ok"
	}
}
