package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/filesystem"
	"github.com/AllaVinner/dotman/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "empty", cfg: New()},
		{
			name: "single references",
			cfg: &Config{Dotfiles: map[string]DotfileRef{
				"bashrc":         SingleRef("~/bashrc"),
				"tmux":           SingleRef("~/dot_config/tmux"),
				"etc/hosts.conf": SingleRef("/etc/hosts.conf"),
			}},
		},
		{
			name: "mixed references",
			cfg: &Config{Dotfiles: map[string]DotfileRef{
				"bashrc": SingleRef("~/bashrc"),
				"nvim": PlatformRef(map[types.Platform]string{
					types.PlatformLinux:   "~/.config/nvim",
					types.PlatformMac:     "~/.config/nvim",
					types.PlatformWindows: "~/AppData/Local/nvim",
				}),
				".profile": PlatformRef(map[types.Platform]string{
					types.PlatformLinux: "~/.profile",
				}),
			}},
		},
	}

	fs := filesystem.NewOS()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := t.TempDir()
			require.NoError(t, Save(tt.cfg, project, fs))

			loaded, err := Load(project, fs)
			require.NoError(t, err)
			assert.True(t, tt.cfg.Equal(loaded), "loaded %v, saved %v", loaded.Dotfiles, tt.cfg.Dotfiles)
		})
	}
}

func TestSaveEmptyConfig(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, Save(New(), project, filesystem.NewOS()))

	data, err := os.ReadFile(filepath.Join(project, ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "[dotfiles]\n", string(data))
}

func TestMarshalIsDeterministic(t *testing.T) {
	cfg := &Config{Dotfiles: map[string]DotfileRef{
		"b": SingleRef("~/b"),
		"a": SingleRef("~/a"),
		"c": PlatformRef(map[types.Platform]string{
			types.PlatformMac:   "~/c-mac",
			types.PlatformLinux: "~/c-linux",
		}),
	}}

	first, err := Marshal(cfg)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Marshal(cfg)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
	assert.Less(t, strings.Index(string(first), "~/a"), strings.Index(string(first), "~/b"))
}

func TestLoadNotAProject(t *testing.T) {
	project := t.TempDir()

	_, err := Load(project, filesystem.NewOS())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotAProject))
	assert.Contains(t, err.Error(), "is not a dotman project")
	assert.False(t, Exists(project, filesystem.NewOS()))
}

func TestLoadWithoutDotfilesTable(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, ConfigFileName), []byte("# nothing yet\n"), 0644))

	cfg, err := Load(project, filesystem.NewOS())
	require.NoError(t, err)
	assert.Empty(t, cfg.Dotfiles)
}

func TestLoadCorruptConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid toml", content: "[dotfiles\nbashrc = "},
		{name: "dotfiles not a table", content: "dotfiles = \"nope\"\n"},
		{name: "value not a string", content: "[dotfiles]\nbashrc = 3\n"},
		{name: "unknown platform", content: "[dotfiles.tmux]\nbeos = \"~/tmux\"\n"},
		{name: "platform value not a string", content: "[dotfiles.tmux]\nlinux = [\"a\"]\n"},
		{name: "parent segment", content: "[dotfiles]\n\"../outside\" = \"~/x\"\n"},
		{name: "absolute key", content: "[dotfiles]\n\"/etc/x\" = \"~/x\"\n"},
	}

	fs := filesystem.NewOS()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(project, ConfigFileName), []byte(tt.content), 0644))

			_, err := Load(project, fs)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigCorrupt), "got %v", err)
		})
	}
}

func TestValidateTargetKey(t *testing.T) {
	valid := []string{"bashrc", "dot_config/tmux", ".profile", "a/b/c"}
	for _, key := range valid {
		assert.NoError(t, ValidateTargetKey(key), key)
	}
	invalid := []string{"", ".", "/abs", "../x", "a/../../b", "a//b", `a\b`, "a/"}
	for _, key := range invalid {
		assert.Error(t, ValidateTargetKey(key), key)
	}
}

func TestDotfileRefFor(t *testing.T) {
	single := SingleRef("~/bashrc")
	for _, p := range types.AllPlatforms {
		got, err := single.For(p)
		require.NoError(t, err)
		assert.Equal(t, "~/bashrc", got)
	}

	perPlatform := PlatformRef(map[types.Platform]string{types.PlatformLinux: "~/linux"})
	got, err := perPlatform.For(types.PlatformLinux)
	require.NoError(t, err)
	assert.Equal(t, "~/linux", got)

	_, err = perPlatform.For(types.PlatformMac)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlatformMissing))
	assert.Equal(t, []types.Platform{types.PlatformLinux}, perPlatform.ConfiguredPlatforms())
}

func TestDotfileRefUnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = DotfileRef{}.For(types.PlatformLinux)
	})
}

func TestPlatformRefCopiesMap(t *testing.T) {
	m := map[types.Platform]string{types.PlatformLinux: "~/a"}
	ref := PlatformRef(m)
	m[types.PlatformLinux] = "~/changed"
	assert.Equal(t, "~/a", ref.Platforms[types.PlatformLinux])
}
