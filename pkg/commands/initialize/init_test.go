package initialize

import (
	"path/filepath"
	"testing"

	"github.com/AllaVinner/dotman/pkg/config"
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/filesystem"
	"github.com/AllaVinner/dotman/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitProject(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, home string)
		project  string
		validate func(t *testing.T, home string)
		wantCode errors.ErrorCode
	}{
		{
			name:    "initializes the current directory",
			project: "",
			validate: func(t *testing.T, home string) {
				testutil.AssertFileContent(t, filepath.Join(home, ".dotman.toml"), "[dotfiles]\n")
			},
		},
		{
			name:    "creates a missing project directory",
			project: "~/dotfiles/project",
			validate: func(t *testing.T, home string) {
				assert.True(t, testutil.DirExists(t, filepath.Join(home, "dotfiles", "project")))
				cfg, err := config.Load(filepath.Join(home, "dotfiles", "project"), filesystem.NewOS())
				require.NoError(t, err)
				assert.Empty(t, cfg.Dotfiles)
			},
		},
		{
			name: "refuses an initialized project",
			setup: func(t *testing.T, home string) {
				testutil.CreateFile(t, home, "project/.dotman.toml", "[dotfiles]\nbashrc = \"~/bashrc\"\n")
			},
			project:  "project",
			wantCode: errors.ErrAlreadyInitialized,
			validate: func(t *testing.T, home string) {
				// existing config is left untouched
				testutil.AssertFileContent(t, filepath.Join(home, "project", ".dotman.toml"), "[dotfiles]\nbashrc = \"~/bashrc\"\n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			home := testutil.CreateDir(t, root, "home")
			if tt.setup != nil {
				tt.setup(t, home)
			}

			result, err := InitProject(InitProjectOptions{
				Project: tt.project,
				Context: testutil.NewTestContext(t, home, home, root),
			})
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
				if tt.wantCode == errors.ErrAlreadyInitialized {
					assert.Equal(t, "Dotman project already initialized", err.Error())
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, filepath.Join(result.Project, ".dotman.toml"), result.ConfigPath)
			}
			if tt.validate != nil {
				tt.validate(t, home)
			}
		})
	}
}
