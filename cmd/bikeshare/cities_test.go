package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bikeshare/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCitiesCmd(t *testing.T) {
	dir := useDataDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "new_york_city.csv")))
	viper.Set(config.KeyWashington, "")

	cmd := NewCitiesCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	// RunE directly: Execute would also run initConfig.
	require.NoError(t, cmd.RunE(cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "CITY")
	assert.Contains(t, lines[1], "Chicago")
	assert.Contains(t, lines[1], filepath.Join(dir, "chicago.csv"))
	assert.True(t, strings.HasSuffix(lines[1], "ok"))
	assert.Contains(t, lines[2], "New York City")
	assert.True(t, strings.HasSuffix(lines[2], "missing"))
	assert.Contains(t, lines[3], "Washington")
	assert.True(t, strings.HasSuffix(lines[3], "not configured"))
}
