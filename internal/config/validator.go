package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Validate checks the loaded configuration and reports every problem at once.
func Validate() error {
	var problems []string

	if size := viper.GetInt(KeyPageSize); size <= 0 {
		problems = append(problems, fmt.Sprintf("%s must be positive, got: %d", KeyPageSize, size))
	}

	for _, key := range []string{KeyChicago, KeyNewYorkCity, KeyWashington} {
		if strings.TrimSpace(viper.GetString(key)) == "" {
			problems = append(problems, fmt.Sprintf("%s must name a data file", key))
		}
	}

	if addr := viper.GetString(KeyMetricsAddr); addr != "" {
		if err := validateAddr(addr); err != nil {
			problems = append(problems, fmt.Sprintf("%s %v", KeyMetricsAddr, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

func validateAddr(addr string) error {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("must be host:port, got: %q", addr)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %q", portStr)
	}
	return nil
}
