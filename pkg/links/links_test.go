package links

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/AllaVinner/dotman/pkg/config"
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/filesystem"
	"github.com/AllaVinner/dotman/pkg/testutil"
	"github.com/AllaVinner/dotman/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	root    string
	home    string
	project string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	home := testutil.CreateDir(t, root, "home")
	project := testutil.CreateDir(t, home, "project")
	return fixture{root: root, home: home, project: project}
}

func (f fixture) link(key, dotfile string, mode types.LinkMode) types.Link {
	return types.Link{
		TargetKey: key,
		Target:    filepath.Join(f.project, key),
		Dotfile:   filepath.Join(f.home, dotfile),
		Mode:      mode,
	}
}

func TestResolve(t *testing.T) {
	f := newFixture(t)
	ctx := testutil.NewTestContext(t, f.project, f.home, f.root)

	link, err := Resolve(f.project, "tmux", config.SingleRef("~/dot_config/tmux"), types.LinkModeSymlink, ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.project, "tmux"), link.Target)
	assert.Equal(t, filepath.Join(f.home, "dot_config", "tmux"), link.Dotfile)
	assert.Equal(t, "~/dot_config/tmux", link.Portable)

	macOnly := config.PlatformRef(map[types.Platform]string{types.PlatformMac: "~/mac"})
	_, err = Resolve(f.project, "x", macOnly, types.LinkModeSymlink, ctx)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlatformMissing))

	link, err = Resolve(f.project, "x", macOnly, types.LinkModeSymlink, ctx.WithPlatform(types.PlatformMac))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.home, "mac"), link.Dotfile)

	_, err = Resolve(f.project, "x", config.SingleRef(""), types.LinkModeSymlink, ctx)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyDotfile))
}

func TestLookup(t *testing.T) {
	cfg := config.New()
	cfg.Set("bashrc", config.SingleRef("~/bashrc"))

	ref, err := Lookup(cfg, "bashrc", "bashrc", "/p")
	require.NoError(t, err)
	assert.Equal(t, "~/bashrc", ref.Path)

	_, err = Lookup(cfg, "zshrc", "./zshrc", "/p")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetNotConfigured))
	assert.Equal(t, "Provided target ./zshrc is not configured in project /p.", err.Error())
}

func TestCheckSetup(t *testing.T) {
	fs := filesystem.NewOS()
	f := newFixture(t)
	link := f.link("bashrc", "bashrc", types.LinkModeSymlink)

	err := CheckSetup(fs, link)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetMissing))

	testutil.CreateFile(t, f.project, "bashrc", "x")
	require.NoError(t, CheckSetup(fs, link))

	// a dangling link still occupies the path
	testutil.CreateSymlink(t, filepath.Join(f.root, "nowhere"), link.Dotfile)
	err = CheckSetup(fs, link)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDotfileOccupied))
	assert.Contains(t, err.Error(), "already is occupied")
}

func TestCheckSyncCompatible(t *testing.T) {
	fs := filesystem.NewOS()

	t.Run("missing dotfile", func(t *testing.T) {
		f := newFixture(t)
		testutil.CreateFile(t, f.project, "bashrc", "x")
		err := CheckSyncCompatible(fs, f.link("bashrc", "bashrc", types.LinkModeCopy))
		assert.True(t, errors.IsErrorCode(err, errors.ErrDotfileNotFound))
	})

	t.Run("symlinked dotfile", func(t *testing.T) {
		f := newFixture(t)
		target := testutil.CreateFile(t, f.project, "bashrc", "x")
		testutil.CreateSymlink(t, target, filepath.Join(f.home, "bashrc"))
		err := CheckSyncCompatible(fs, f.link("bashrc", "bashrc", types.LinkModeCopy))
		assert.True(t, errors.IsErrorCode(err, errors.ErrDotfileIsSymlink))
	})

	t.Run("directory target with file dotfile", func(t *testing.T) {
		f := newFixture(t)
		testutil.CreateFile(t, f.project, "tmux/tmux.conf", "x")
		testutil.CreateFile(t, f.home, "tmux", "x")
		err := CheckSyncCompatible(fs, f.link("tmux", "tmux", types.LinkModeCopy))
		assert.True(t, errors.IsErrorCode(err, errors.ErrKindMismatch))
	})

	t.Run("file target with directory dotfile", func(t *testing.T) {
		f := newFixture(t)
		testutil.CreateFile(t, f.project, "bashrc", "x")
		testutil.CreateDir(t, f.home, "bashrc")
		err := CheckSyncCompatible(fs, f.link("bashrc", "bashrc", types.LinkModeCopy))
		assert.True(t, errors.IsErrorCode(err, errors.ErrKindMismatch))
	})

	t.Run("missing target", func(t *testing.T) {
		f := newFixture(t)
		testutil.CreateFile(t, f.home, "bashrc", "x")
		err := CheckSyncCompatible(fs, f.link("bashrc", "bashrc", types.LinkModeCopy))
		assert.True(t, errors.IsErrorCode(err, errors.ErrTargetMissing))
	})

	t.Run("symlinked directory target", func(t *testing.T) {
		f := newFixture(t)
		testutil.CreateFile(t, f.root, "real_tmux/tmux.conf", "x")
		testutil.CreateSymlink(t, filepath.Join(f.root, "real_tmux"), filepath.Join(f.project, "tmux"))
		testutil.CreateFile(t, f.home, "tmux/tmux.conf", "y")
		assert.NoError(t, CheckSyncCompatible(fs, f.link("tmux", "tmux", types.LinkModeCopy)))
	})

	t.Run("compatible", func(t *testing.T) {
		f := newFixture(t)
		testutil.CreateFile(t, f.project, "bashrc", "x")
		testutil.CreateFile(t, f.home, "bashrc", "y")
		assert.NoError(t, CheckSyncCompatible(fs, f.link("bashrc", "bashrc", types.LinkModeCopy)))
	})
}

func TestMaterialize(t *testing.T) {
	fs := filesystem.NewOS()

	t.Run("symlink", func(t *testing.T) {
		f := newFixture(t)
		testutil.CreateFile(t, f.project, "tmux/tmux.conf", "ORIGIN: tmux")
		link := f.link("tmux", "dot_config/tmux", types.LinkModeSymlink)

		require.NoError(t, Materialize(fs, link))
		testutil.AssertSymlink(t, link.Dotfile, link.Target)
		testutil.AssertFileContent(t, filepath.Join(link.Dotfile, "tmux.conf"), "ORIGIN: tmux")
	})

	t.Run("copy", func(t *testing.T) {
		f := newFixture(t)
		testutil.CreateFile(t, f.project, "tmux/tmux.conf", "ORIGIN: tmux")
		link := f.link("tmux", "dot_config/tmux", types.LinkModeCopy)

		require.NoError(t, Materialize(fs, link))
		assert.False(t, testutil.SymlinkExists(t, link.Dotfile))
		testutil.AssertFileContent(t, filepath.Join(link.Dotfile, "tmux.conf"), "ORIGIN: tmux")
	})
}

func TestRefresh(t *testing.T) {
	fs := filesystem.NewOS()
	f := newFixture(t)
	testutil.CreateFile(t, f.project, "tmux/tmux.conf", "new")
	testutil.CreateFile(t, f.home, "tmux/tmux.conf", "old")
	testutil.CreateFile(t, f.home, "tmux/stale", "stale")
	link := f.link("tmux", "tmux", types.LinkModeCopy)

	require.NoError(t, Refresh(fs, link, types.SyncPush))
	testutil.AssertFileContent(t, filepath.Join(link.Dotfile, "tmux.conf"), "new")
	testutil.AssertNoFile(t, filepath.Join(link.Dotfile, "stale"))

	testutil.CreateFile(t, f.home, "tmux/tmux.conf", "edited live")
	require.NoError(t, Refresh(fs, link, types.SyncPull))
	testutil.AssertFileContent(t, filepath.Join(link.Target, "tmux.conf"), "edited live")
}

func TestClassify(t *testing.T) {
	fs := filesystem.NewOS()

	tests := []struct {
		name   string
		setup  func(t *testing.T, f fixture)
		key    string
		state  types.LinkState
		status string
	}{
		{
			name:   "missing target",
			setup:  func(t *testing.T, f fixture) {},
			key:    "bashrc",
			state:  types.LinkStateMissingTarget,
			status: "Missing target",
		},
		{
			name: "missing dotfile",
			setup: func(t *testing.T, f fixture) {
				testutil.CreateFile(t, f.project, "bashrc", "x")
			},
			key:    "bashrc",
			state:  types.LinkStateMissingDotfile,
			status: "Missing Dotfile",
		},
		{
			name: "complete",
			setup: func(t *testing.T, f fixture) {
				target := testutil.CreateFile(t, f.project, "bashrc", "x")
				testutil.CreateSymlink(t, target, filepath.Join(f.home, "bashrc"))
			},
			key:    "bashrc",
			state:  types.LinkStateComplete,
			status: "Complete",
		},
		{
			name: "complete through relative link",
			setup: func(t *testing.T, f fixture) {
				testutil.CreateFile(t, f.project, "bashrc", "x")
				testutil.CreateSymlink(t, "project/bashrc", filepath.Join(f.home, "bashrc"))
			},
			key:    "bashrc",
			state:  types.LinkStateComplete,
			status: "Complete",
		},
		{
			name: "wrong link",
			setup: func(t *testing.T, f fixture) {
				testutil.CreateFile(t, f.project, "bashrc", "x")
				other := testutil.CreateFile(t, f.home, "other", "x")
				testutil.CreateSymlink(t, other, filepath.Join(f.home, "bashrc"))
			},
			key:    "bashrc",
			state:  types.LinkStateWrongLink,
			status: "Dotfile link does not point to target",
		},
		{
			name: "file copy complete",
			setup: func(t *testing.T, f fixture) {
				testutil.CreateFile(t, f.project, "bashrc", "same")
				testutil.CreateFile(t, f.home, "bashrc", "same")
			},
			key:    "bashrc",
			state:  types.LinkStateCompleteCopy,
			status: "Complete - Copy",
		},
		{
			name: "file copy differs",
			setup: func(t *testing.T, f fixture) {
				testutil.CreateFile(t, f.project, "bashrc", "project")
				testutil.CreateFile(t, f.home, "bashrc", "live")
			},
			key:    "bashrc",
			state:  types.LinkStateDrifted,
			status: "Dotfile is not a symlink nor equal in content",
		},
		{
			name: "file target with directory dotfile",
			setup: func(t *testing.T, f fixture) {
				testutil.CreateFile(t, f.project, "bashrc", "x")
				testutil.CreateDir(t, f.home, "bashrc")
			},
			key:    "bashrc",
			state:  types.LinkStateKindMismatch,
			status: "Dotfile is not a symlink, nor a file which the target is",
		},
		{
			name: "directory target with file dotfile",
			setup: func(t *testing.T, f fixture) {
				testutil.CreateFile(t, f.project, "tmux/tmux.conf", "x")
				testutil.CreateFile(t, f.home, "tmux", "x")
			},
			key:    "tmux",
			state:  types.LinkStateKindMismatch,
			status: "Dotfile is not a symlink, nor a directory which the target is",
		},
		{
			name: "directory copy complete",
			setup: func(t *testing.T, f fixture) {
				testutil.CreateFile(t, f.project, "tmux/tmux.conf", "x")
				testutil.CreateFile(t, f.home, "tmux/tmux.conf", "x")
			},
			key:    "tmux",
			state:  types.LinkStateCompleteCopy,
			status: "Complete - Copy",
		},
		{
			name: "directory copy with extra files",
			setup: func(t *testing.T, f fixture) {
				testutil.CreateFile(t, f.project, "tmux/tmux.conf", "x")
				testutil.CreateFile(t, f.home, "tmux/tmux.conf", "x")
				testutil.CreateFile(t, f.home, "tmux/b", "x")
				testutil.CreateFile(t, f.home, "tmux/a", "x")
			},
			key:    "tmux",
			state:  types.LinkStateDrifted,
			status: "Dotfile is not a symlink, and contains extra files compared to target: a, b",
		},
		{
			name: "directory copy with missing files",
			setup: func(t *testing.T, f fixture) {
				testutil.CreateFile(t, f.project, "tmux/tmux.conf", "x")
				testutil.CreateFile(t, f.project, "tmux/plugins/p.conf", "x")
				testutil.CreateFile(t, f.home, "tmux/tmux.conf", "x")
			},
			key:    "tmux",
			state:  types.LinkStateDrifted,
			status: "Dotfile is not a symlink, and is missing files compared to target: plugins/p.conf",
		},
		{
			name: "symlinked directory target with directory copy",
			setup: func(t *testing.T, f fixture) {
				testutil.CreateFile(t, f.root, "real_tmux/tmux.conf", "x")
				testutil.CreateSymlink(t, filepath.Join(f.root, "real_tmux"), filepath.Join(f.project, "tmux"))
				testutil.CreateFile(t, f.home, "tmux/tmux.conf", "x")
			},
			key:    "tmux",
			state:  types.LinkStateCompleteCopy,
			status: "Complete - Copy",
		},
		{
			name: "directory copy with differing file",
			setup: func(t *testing.T, f fixture) {
				testutil.CreateFile(t, f.project, "tmux/tmux.conf", "x")
				testutil.CreateFile(t, f.home, "tmux/tmux.conf", "y")
			},
			key:    "tmux",
			state:  types.LinkStateDrifted,
			status: "Dotfile is not a symlink, and file tmux.conf is not identical to target.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(t, f)

			st, err := Classify(fs, f.link(tt.key, tt.key, types.LinkModeSymlink))
			require.NoError(t, err)
			assert.Equal(t, tt.state, st.State)
			assert.Equal(t, tt.status, st.Status)
		})
	}
}

func TestPlanAndExecute(t *testing.T) {
	links := []types.Link{
		{TargetKey: "a", Dotfile: "/home/a"},
		{TargetKey: "b", Dotfile: "/home/b"},
		{TargetKey: "c", Dotfile: "/home/c"},
	}

	t.Run("plan stops at first failure", func(t *testing.T) {
		var checked []string
		_, err := Plan("/project", links, func(l types.Link) error {
			checked = append(checked, l.TargetKey)
			if l.TargetKey == "b" {
				return errors.New(errors.ErrDotfileOccupied, "occupied")
			}
			return nil
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrDotfileOccupied))
		assert.Equal(t, []string{"a", "b"}, checked)
	})

	t.Run("plan rejects conflicts within the batch", func(t *testing.T) {
		tests := []struct {
			name     string
			dotfiles []string
			wantCode errors.ErrorCode
		}{
			{"same dotfile twice", []string{"/home/x", "/home/x"}, errors.ErrDotfileOccupied},
			{"nested below earlier", []string{"/home/cfg", "/home/cfg/tmux"}, errors.ErrInvalidInput},
			{"nested above later", []string{"/home/cfg/tmux", "/home/cfg"}, errors.ErrInvalidInput},
			{"inside project", []string{"/project/x"}, errors.ErrInvalidInput},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var batch []types.Link
				for i, d := range tt.dotfiles {
					batch = append(batch, types.Link{TargetKey: string(rune('a' + i)), Dotfile: d})
				}
				called := false
				_, err := Plan("/project", batch, func(types.Link) error {
					called = true
					return nil
				})
				assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
				assert.False(t, called)
			})
		}
	})

	t.Run("plan accepts siblings sharing a prefix", func(t *testing.T) {
		batch := []types.Link{
			{TargetKey: "a", Dotfile: "/home/cfg"},
			{TargetKey: "b", Dotfile: "/home/cfg2"},
		}
		_, err := Plan("/project", batch, func(types.Link) error { return nil })
		assert.NoError(t, err)
	})

	t.Run("execute reports progress", func(t *testing.T) {
		done, err := Execute(links, func(l types.Link) error {
			if l.TargetKey == "c" {
				return errors.Wrap(stderrors.New("disk full"), errors.ErrFileAccess, "write failed")
			}
			return nil
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
		assert.Contains(t, err.Error(), "applied 2 of 3 links")
		assert.Len(t, done, 2)
	})

	t.Run("execute stops at first failure", func(t *testing.T) {
		var applied []string
		done, err := Execute(links, func(l types.Link) error {
			if l.TargetKey == "a" {
				return errors.New(errors.ErrFileAccess, "write failed")
			}
			applied = append(applied, l.TargetKey)
			return nil
		})
		require.Error(t, err)
		assert.Empty(t, done)
		assert.Empty(t, applied)
	})

	t.Run("execute all", func(t *testing.T) {
		done, err := Execute(links, func(types.Link) error { return nil })
		require.NoError(t, err)
		assert.Equal(t, links, done)
	})
}
