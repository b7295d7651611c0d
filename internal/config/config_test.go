package config_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/typedrills/internal/config"
)

func TestSetupDefaults(t *testing.T) {
	require.NoError(t, config.Setup(afero.NewMemMapFs(), ""))

	for _, k := range config.Keys() {
		assert.NotNil(t, viper.Get(k), k)
	}
	assert.Equal(t, "warn", viper.GetString(config.LogLevel))
	assert.Equal(t, []string{"1", "2", "3"}, viper.GetStringSlice(config.StackDefault))
}

func TestSetupMissingExplicitFile(t *testing.T) {
	err := config.Setup(afero.NewMemMapFs(), "/nowhere/drills.toml")
	assert.Error(t, err)
}

func TestWriteThenRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/cfg", "drills.toml")

	require.NoError(t, config.Write(fs, path))

	b, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[log]")
	assert.Contains(t, string(b), "[stack]")

	require.NoError(t, config.Setup(fs, path))
	assert.Equal(t, path, viper.ConfigFileUsed())
	assert.Equal(t, "warn", viper.GetString(config.LogLevel))
	assert.True(t, viper.GetBool(config.OutputColor))
}

func TestFileOverridesDefault(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/cfg/drills.toml"
	require.NoError(t, afero.WriteFile(fs, path, []byte("[log]\nlevel = \"debug\"\n"), 0o644))

	require.NoError(t, config.Setup(fs, path))
	assert.Equal(t, "debug", viper.GetString(config.LogLevel))
	assert.False(t, viper.GetBool(config.LogJSON), "untouched keys keep their default")
}

func TestEnvOverridesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/cfg/drills.toml"
	require.NoError(t, afero.WriteFile(fs, path, []byte("[log]\nlevel = \"debug\"\n"), 0o644))
	t.Setenv("DRILLS_LOG_LEVEL", "error")

	require.NoError(t, config.Setup(fs, path))
	assert.Equal(t, "error", viper.GetString(config.LogLevel))
}

func TestFieldEnv(t *testing.T) {
	assert.Equal(t, "DRILLS_OUTPUT_JSON", config.Default[config.OutputJSON].Env())
}

func TestEffective(t *testing.T) {
	require.NoError(t, config.Setup(afero.NewMemMapFs(), ""))
	eff := config.Effective()
	assert.Len(t, eff, len(config.Default))
	assert.Equal(t, false, eff[config.OutputJSON])
}
