// Package configfile loads connector configuration files. The format is
// picked from the file extension; JSON, YAML and TOML are supported.
package configfile

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// UnknownExtError is returned for config paths whose extension does not map
// to a supported format.
type UnknownExtError struct {
	Path string
}

func (e *UnknownExtError) Error() string {
	return fmt.Sprintf("configfile: unknown extension for config file %q (expected .json, .yml, .yaml or .toml)", e.Path)
}

// Load reads the file at path into out (a pointer to a mapstructure-tagged
// struct). Defaults are applied for keys the file leaves unset.
func Load(path string, defaults map[string]any, out any) error {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = "json"
	case ".yml", ".yaml":
		format = "yaml"
	case ".toml":
		format = "toml"
	default:
		return &UnknownExtError{Path: path}
	}
	slog.Debug("loading config file", "path", path, "format", format)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(format)
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}
	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("unmarshal config %q: %w", path, err)
	}
	return nil
}
