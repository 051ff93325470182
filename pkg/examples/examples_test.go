package examples

import (
	"testing"

	"github.com/AllaVinner/dotman/pkg/config"
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/filesystem"
	"github.com/AllaVinner/dotman/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFirstTime(t *testing.T) {
	p, err := Build(t.TempDir(), StageFirstTime, nil)
	require.NoError(t, err)

	testutil.AssertFileContent(t, p.Bashrc, "ORIGIN: bashrc")
	testutil.AssertFileContent(t, p.TmuxConfig, "ORIGIN: tmux.conf")
	assert.True(t, testutil.DirExists(t, p.Project))
	testutil.AssertNoFile(t, p.ProjectConfig)
}

func TestBuildInit(t *testing.T) {
	for _, stage := range []Stage{StageInit, StageAdd} {
		p, err := Build(t.TempDir(), stage, nil)
		require.NoError(t, err)
		testutil.AssertFileContent(t, p.ProjectConfig, "[dotfiles]\n")
	}
}

func TestBuildComplete(t *testing.T) {
	p, err := Build(t.TempDir(), StageComplete, nil)
	require.NoError(t, err)

	testutil.AssertSymlink(t, p.Bashrc, p.ProjectBashrc)
	testutil.AssertSymlink(t, p.TmuxDir, p.ProjectTmuxDir)
	testutil.AssertFileContent(t, p.ProjectTmuxConfig, "ORIGIN: tmux.conf")

	cfg, err := config.Load(p.Project, filesystem.NewOS())
	require.NoError(t, err)
	assert.Equal(t, []string{"bashrc", "tmux"}, cfg.Targets())
	ref, _ := cfg.Get("tmux")
	assert.Equal(t, "~/dot_config/tmux", ref.Path)
}

func TestBuildCompleteWithCopy(t *testing.T) {
	p, err := Build(t.TempDir(), StageCompleteWithCopy, nil)
	require.NoError(t, err)

	assert.False(t, testutil.SymlinkExists(t, p.Bashrc))
	testutil.AssertFileContent(t, p.Bashrc, "ORIGIN: bashrc")
	testutil.AssertFileContent(t, p.ProjectBashrc, "ORIGIN: bashrc")
	testutil.AssertFileContent(t, p.TmuxConfig, "ORIGIN: tmux.conf")
}

func TestBuildNewMachine(t *testing.T) {
	p, err := Build(t.TempDir(), StageNewMachine, nil)
	require.NoError(t, err)

	testutil.AssertNoFile(t, p.Bashrc)
	testutil.AssertNoFile(t, p.TmuxDir)
	testutil.AssertFileContent(t, p.ProjectBashrc, "ORIGIN: bashrc")
}

func TestParseStage(t *testing.T) {
	stage, err := ParseStage("new-machine")
	require.NoError(t, err)
	assert.Equal(t, StageNewMachine, stage)

	_, err = ParseStage("done")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
