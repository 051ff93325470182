package config

import (
	"fmt"
	"os"

	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/types"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Settings are user defaults for command line flags
type Settings struct {
	Mode    string          `koanf:"mode"`
	Output  OutputSettings  `koanf:"output"`
	Logging LoggingSettings `koanf:"logging"`
}

// OutputSettings controls how results are printed
type OutputSettings struct {
	Format string `koanf:"format"`
	// Theme is a YAML style file replacing the built in colors
	Theme string `koanf:"theme"`
}

// LoggingSettings controls the log file
type LoggingSettings struct {
	File bool `koanf:"file"`
}

// LinkMode returns the configured default link mode
func (s *Settings) LinkMode() types.LinkMode {
	mode, err := types.ParseLinkMode(s.Mode)
	if err != nil {
		return types.LinkModeSymlink
	}
	return mode
}

// DefaultSettings returns the embedded defaults
func DefaultSettings() (*Settings, error) {
	return LoadSettings("")
}

// LoadSettings layers the user settings file at path (if it exists) over the
// embedded defaults. An empty path loads the defaults only.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load user settings if they exist
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigCorrupt, "failed to load settings from %s", path)
			}
			log.Debug().Str("path", path).Msg("User settings loaded")
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigCorrupt, "failed to decode settings")
	}
	if _, err := types.ParseLinkMode(s.Mode); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigCorrupt, "invalid mode in settings %s", path)
	}
	return &s, nil
}
