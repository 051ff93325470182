package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/logging"
	"github.com/AllaVinner/dotman/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

var log = logging.GetLogger("config")

// ConfigFileName is the file that marks a directory as a dotman project
const ConfigFileName = ".dotman.toml"

const dotfilesTable = "dotfiles"

const emptyConfig = "[" + dotfilesTable + "]\n"

// Config maps project-relative targets to dotfile references
type Config struct {
	Dotfiles map[string]DotfileRef
}

// New returns an empty config
func New() *Config {
	return &Config{Dotfiles: make(map[string]DotfileRef)}
}

// Path returns the config file location for project
func Path(project string) string {
	return filepath.Join(project, ConfigFileName)
}

// Exists reports whether project has a config file
func Exists(project string, fs types.FS) bool {
	_, err := fs.Stat(Path(project))
	return err == nil
}

// Get returns the reference stored for target
func (c *Config) Get(target string) (DotfileRef, bool) {
	ref, ok := c.Dotfiles[target]
	return ref, ok
}

// Set records ref for target, replacing any previous entry
func (c *Config) Set(target string, ref DotfileRef) {
	if c.Dotfiles == nil {
		c.Dotfiles = make(map[string]DotfileRef)
	}
	c.Dotfiles[target] = ref
}

// Targets returns every configured target in sorted order
func (c *Config) Targets() []string {
	keys := make([]string, 0, len(c.Dotfiles))
	for k := range c.Dotfiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether both configs hold the same entries
func (c *Config) Equal(other *Config) bool {
	if len(c.Dotfiles) != len(other.Dotfiles) {
		return false
	}
	for k, ref := range c.Dotfiles {
		o, ok := other.Dotfiles[k]
		if !ok || !ref.Equal(o) {
			return false
		}
	}
	return true
}

// Load reads the project config
func Load(project string, fs types.FS) (*Config, error) {
	configPath := Path(project)
	logger := log.With().Str("configPath", configPath).Logger()

	data, err := fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotAProject,
				"Path %s is not a dotman project. Please run `dotman init`.", project).
				WithDetail("project", project)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", configPath)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigCorrupt,
			"Config file %s is corrupted", configPath).WithDetail("project", project)
	}

	logger.Debug().Int("entries", len(cfg.Dotfiles)).Msg("Project config loaded")
	return cfg, nil
}

// Parse decodes and validates config file content
func Parse(data []byte) (*Config, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}

	cfg := New()
	table, ok := raw[dotfilesTable]
	if !ok {
		return cfg, nil
	}
	entries, ok := table.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%q must be a table", dotfilesTable)
	}

	for key, value := range entries {
		if err := ValidateTargetKey(key); err != nil {
			return nil, err
		}
		ref, err := parseRef(key, value)
		if err != nil {
			return nil, err
		}
		cfg.Dotfiles[key] = ref
	}
	return cfg, nil
}

func parseRef(key string, value interface{}) (DotfileRef, error) {
	switch v := value.(type) {
	case string:
		return SingleRef(v), nil
	case map[string]interface{}:
		platforms := make(map[types.Platform]string, len(v))
		for name, p := range v {
			platform := types.Platform(name)
			if !platform.IsValid() {
				return DotfileRef{}, fmt.Errorf("target %q: unknown platform %q", key, name)
			}
			s, ok := p.(string)
			if !ok {
				return DotfileRef{}, fmt.Errorf("target %q: platform %q must map to a string", key, name)
			}
			platforms[platform] = s
		}
		return PlatformRef(platforms), nil
	default:
		return DotfileRef{}, fmt.Errorf("target %q must map to a string or a platform table", key)
	}
}

// ValidateTargetKey checks that key is a clean, relative, forward-slash
// path that stays inside the project.
func ValidateTargetKey(key string) error {
	if key == "" || key == "." {
		return fmt.Errorf("empty target key")
	}
	if strings.HasPrefix(key, "/") || filepath.IsAbs(key) {
		return fmt.Errorf("target %q must be relative to the project", key)
	}
	if strings.Contains(key, `\`) {
		return fmt.Errorf("target %q must use forward slashes", key)
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." {
			return fmt.Errorf("target %q must not contain '..'", key)
		}
	}
	if path.Clean(key) != key {
		return fmt.Errorf("target %q is not a clean path", key)
	}
	return nil
}

// Marshal serializes the config deterministically. Single references are
// bare strings and per-platform references nested tables.
func Marshal(cfg *Config) ([]byte, error) {
	if len(cfg.Dotfiles) == 0 {
		return []byte(emptyConfig), nil
	}
	entries := make(map[string]interface{}, len(cfg.Dotfiles))
	for key, ref := range cfg.Dotfiles {
		entries[key] = ref.toTOML()
	}
	return toml.Marshal(map[string]interface{}{dotfilesTable: entries})
}

// Save writes the config into project
func Save(cfg *Config, project string, fs types.FS) error {
	data, err := Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to serialize config")
	}
	configPath := Path(project)
	if err := fs.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", configPath)
	}
	log.Debug().Str("configPath", configPath).Int("entries", len(cfg.Dotfiles)).Msg("Project config saved")
	return nil
}
