// file.go locates, reads and saves asciigen's config.yaml and feeds its values into unset flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	perrors "github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. ASCIIGEN_WIDTH.
	EnvPrefix = "ASCIIGEN"
	// EnvConfig names an explicit config file.
	EnvConfig = "ASCIIGEN_CONFIG"

	fileName = "config"
	fileExt  = "yaml"
)

// NewViper returns a viper instance reading env overrides and the config
// file at explicitPath, or config.yaml from SearchDirs when it is empty.
func NewViper(explicitPath string) *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	Configure(v, explicitPath)
	return v
}

// Configure points v at the config file.
func Configure(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName(fileName)
	v.SetConfigType(fileExt)
	for _, dir := range SearchDirs() {
		v.AddConfigPath(dir)
	}
}

// Read loads the config file. A missing file is only an error when strict.
func Read(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

// Bind copies config file and environment values into every flag the user
// did not set on the command line.
func Bind(v *viper.Viper, sets ...*pflag.FlagSet) error {
	for _, fs := range sets {
		if fs == nil {
			continue
		}
		if err := v.BindPFlags(fs); err != nil {
			return err
		}
	}
	for _, fs := range sets {
		if fs == nil {
			continue
		}
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			if bindErr != nil || f.Changed || !v.IsSet(f.Name) {
				return
			}
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				if err := sv.Replace(v.GetStringSlice(f.Name)); err != nil {
					bindErr = fmt.Errorf("config value for %s: %w", f.Name, err)
				}
				return
			}
			val := fmt.Sprintf("%v", v.Get(f.Name))
			if val == "" {
				return
			}
			if err := f.Value.Set(val); err != nil {
				bindErr = fmt.Errorf("config value for %s: %w", f.Name, err)
			}
		})
		if bindErr != nil {
			return bindErr
		}
	}
	return nil
}

// SearchDirs lists the directories searched for config.yaml, in order.
func SearchDirs() []string {
	added := make(map[string]struct{})
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := added[path]; ok {
			return
		}
		added[path] = struct{}{}
		dirs = append(dirs, path)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		add(filepath.Join(xdg, "asciigen"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		add(filepath.Join(home, ".config", "asciigen"))
		add(filepath.Join(home, ".asciigen"))
	}
	return dirs
}

// DefaultPath is where a config file is created when none was loaded.
func DefaultPath() string {
	dirs := SearchDirs()
	if len(dirs) == 0 {
		return fileName + "." + fileExt
	}
	return filepath.Join(dirs[0], fileName+"."+fileExt)
}

// Marshal encodes c as YAML.
func Marshal(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes c to path unless the file already holds the same content. It
// returns the content previously on disk ("" when there was none).
func Save(path string, c Config) (before string, changed bool, err error) {
	if err := c.Validate(); err != nil {
		return "", false, err
	}
	data, err := Marshal(c)
	if err != nil {
		return "", false, perrors.Wrap(err, "encode config")
	}
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		before = string(existing)
	case !os.IsNotExist(err):
		return "", false, perrors.Wrapf(err, "read %s", path)
	}
	if err == nil && before == string(data) {
		return before, false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return before, false, perrors.Wrapf(err, "create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return before, false, perrors.Wrapf(err, "write %s", path)
	}
	return before, true, nil
}
