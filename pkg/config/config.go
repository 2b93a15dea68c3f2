package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/siyuan-infoblox/christmastree-hook/pkg/errors"
)

const (
	// FileName is the config file looked up from the working directory upwards.
	FileName = ".christmastree.toml"

	DefaultGroupSize = 5
)

// DefaultExtensions lists the source-file extensions checked when none are configured.
var DefaultExtensions = []string{".py"}

// Config holds the settings shared by every processed file.
type Config struct {
	GroupSize  int      `toml:"group_size"`
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		GroupSize:  DefaultGroupSize,
		Extensions: append([]string(nil), DefaultExtensions...),
	}
}

// Load reads the TOML file at path on top of the defaults.
// Keys missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: %s", errors.ErrMsgFailedToLoadConfig,
			fmt.Sprintf(errors.ErrMsgUnknownConfigKeys, strings.Join(keys, ", ")))
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), DefaultExtensions...)
	}
	return cfg, nil
}

// Find walks up from dir looking for FileName and returns its path,
// or an empty string when no config file exists.
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	iterations := 0
	maxIterations := 20 // Prevent infinite loop

	for iterations < maxIterations {
		iterations++

		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// Resolve loads the explicitly named config file, or the one discovered from
// the working directory, or the defaults when neither exists.
func Resolve(explicit string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errors.ErrMsgFailedToGetWorkingDir, err)
	}
	if found := Find(wd); found != "" {
		return Load(found)
	}
	return Default(), nil
}
