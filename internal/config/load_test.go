package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())

		require.NoError(t, Load(""))

		assert.Equal(t, ".", viper.GetString(KeyDataDir))
		assert.Equal(t, 5, viper.GetInt(KeyPageSize))
		assert.Equal(t, "chicago.csv", viper.GetString(KeyChicago))
		assert.Equal(t, "new_york_city.csv", viper.GetString(KeyNewYorkCity))
		assert.Equal(t, "washington.csv", viper.GetString(KeyWashington))
		assert.False(t, viper.GetBool(KeyVerbose))
		assert.Empty(t, viper.GetString(KeyMetricsAddr))
	})

	t.Run("From Env", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())
		t.Setenv("BIKESHARE_PAGE_SIZE", "12")
		t.Setenv("BIKESHARE_CITIES_WASHINGTON", "dc.csv")

		require.NoError(t, Load(""))

		assert.Equal(t, 12, viper.GetInt(KeyPageSize))
		assert.Equal(t, "dc.csv", viper.GetString(KeyWashington))
	})

	t.Run("From Dotenv", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BIKESHARE_DATA_DIR=/srv/bikeshare\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("BIKESHARE_DATA_DIR") })

		require.NoError(t, Load(""))

		assert.Equal(t, "/srv/bikeshare", viper.GetString(KeyDataDir))
	})

	t.Run("From Config File", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		t.Chdir(dir)
		cfg := "data_dir: data\npage_size: 7\ncities:\n  chicago: chi.csv\n"
		path := filepath.Join(dir, "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

		require.NoError(t, Load(path))

		assert.Equal(t, "data", viper.GetString(KeyDataDir))
		assert.Equal(t, 7, viper.GetInt(KeyPageSize))
		assert.Equal(t, "chi.csv", viper.GetString(KeyChicago))
		assert.Equal(t, "washington.csv", viper.GetString(KeyWashington))
	})

	t.Run("Broken Config File", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		t.Chdir(dir)
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("page_size: [unterminated\n"), 0644))

		err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config")
	})
}
