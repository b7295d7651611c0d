// Package config loads drills settings with viper: factory defaults, an
// optional drills.toml and DRILLS_* environment variables, in increasing
// order of precedence. Command-line flags are bound on top by the cmd package.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	Name      = "drills"
	EnvPrefix = "DRILLS"
)

// EnvKeyReplacer maps dotted keys to environment variable form.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Dir is the directory searched for drills.toml.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, Name)
}

// Setup resets the global viper instance and loads configuration from fs.
// An empty file means "search Dir() for drills.toml"; a missing searched file
// is not an error, a missing explicit file is.
func Setup(fs afero.Fs, file string) error {
	viper.Reset()
	viper.SetFs(fs)
	viper.SetConfigType("toml")

	if file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName(Name)
		viper.AddConfigPath(Dir())
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.AutomaticEnv()

	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	return nil
}

// Effective returns the current value of every known key.
func Effective() map[string]any {
	out := make(map[string]any, len(Default))
	for _, k := range Keys() {
		out[k] = viper.Get(k)
	}
	return out
}

// Write stores the factory defaults as TOML at path, creating parent
// directories as needed.
func Write(fs afero.Fs, path string) error {
	tree := make(map[string]any)
	for k, f := range Default {
		nest(tree, strings.Split(k, "."), f.Value)
	}

	b, err := toml.Marshal(tree)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(path))
	}
	if err := afero.WriteFile(fs, path, b, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func nest(tree map[string]any, path []string, v any) {
	if len(path) == 1 {
		tree[path[0]] = v
		return
	}
	sub, ok := tree[path[0]].(map[string]any)
	if !ok {
		sub = make(map[string]any)
		tree[path[0]] = sub
	}
	nest(sub, path[1:], v)
}
