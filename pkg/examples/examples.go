// Package examples builds a small home directory with dotfiles at the
// different stages of a dotman workflow. Tests use it as a fixture and the
// example command uses it for tutorials.
package examples

import (
	"fmt"
	"path/filepath"

	"github.com/AllaVinner/dotman/pkg/commands/add"
	"github.com/AllaVinner/dotman/pkg/commands/initialize"
	"github.com/AllaVinner/dotman/pkg/config"
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/filesystem"
	"github.com/AllaVinner/dotman/pkg/logging"
	"github.com/AllaVinner/dotman/pkg/paths"
	"github.com/AllaVinner/dotman/pkg/types"
)

// Stage names how far the example workflow has progressed
type Stage string

const (
	// StageFirstTime has dotfiles in home and an empty project directory
	StageFirstTime Stage = "first-time"
	// StageInit has an initialized project
	StageInit Stage = "init"
	// StageAdd is the starting point of the add tutorial, same tree as StageInit
	StageAdd Stage = "add"
	// StageComplete has bashrc and tmux added in symlink mode
	StageComplete Stage = "complete"
	// StageCompleteWithCopy has bashrc and tmux added in copy mode
	StageCompleteWithCopy Stage = "complete-with-copy"
	// StageNewMachine is StageComplete with the dotfile side removed
	StageNewMachine Stage = "new-machine"
)

// Stages lists every stage in workflow order
var Stages = []Stage{StageFirstTime, StageInit, StageAdd, StageComplete, StageCompleteWithCopy, StageNewMachine}

// ParseStage validates a stage name
func ParseStage(s string) (Stage, error) {
	for _, stage := range Stages {
		if string(stage) == s {
			return stage, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown stage %q, expected one of %v", s, Stages)
}

// Paths are the locations of the example tree
type Paths struct {
	Root              string
	Home              string
	Bashrc            string
	DotConfig         string
	TmuxDir           string
	TmuxConfig        string
	Project           string
	ProjectConfig     string
	ProjectBashrc     string
	ProjectTmuxDir    string
	ProjectTmuxConfig string
}

// PathsFor lays out the example tree under root
func PathsFor(root string) *Paths {
	home := filepath.Join(root, "home")
	project := filepath.Join(home, "project")
	return &Paths{
		Root:              root,
		Home:              home,
		Bashrc:            filepath.Join(home, "bashrc"),
		DotConfig:         filepath.Join(home, "dot_config"),
		TmuxDir:           filepath.Join(home, "dot_config", "tmux"),
		TmuxConfig:        filepath.Join(home, "dot_config", "tmux", "tmux.conf"),
		Project:           project,
		ProjectConfig:     filepath.Join(project, config.ConfigFileName),
		ProjectBashrc:     filepath.Join(project, "bashrc"),
		ProjectTmuxDir:    filepath.Join(project, "tmux"),
		ProjectTmuxConfig: filepath.Join(project, "tmux", "tmux.conf"),
	}
}

// ContextFor returns a context working in the example project, with the
// example home and root.
func ContextFor(p *Paths) (*paths.Context, error) {
	return paths.NewContext(p.Project, p.Home, p.Root, "")
}

// Origin is the content written into each example dotfile
func Origin(path string) string {
	return "ORIGIN: " + filepath.Base(path)
}

// Build creates the example tree under root at stage. Root must be
// absolute.
func Build(root string, stage Stage, fs types.FS) (*Paths, error) {
	log := logging.GetLogger("examples")
	if fs == nil {
		fs = filesystem.NewOS()
	}
	p := PathsFor(filepath.Clean(root))
	ctx, err := ContextFor(p)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("root", p.Root).Str("stage", string(stage)).Msg("Building example")

	for _, dir := range []string{p.Root, p.Home, p.Project, p.DotConfig, p.TmuxDir} {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to create %s", dir)
		}
	}
	for _, file := range []string{p.Bashrc, p.TmuxConfig} {
		if err := fs.WriteFile(file, []byte(Origin(file)), 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", file)
		}
	}
	if stage == StageFirstTime {
		return p, nil
	}

	if _, err := initialize.InitProject(initialize.InitProjectOptions{
		Project: p.Project, Context: ctx, FileSystem: fs,
	}); err != nil {
		return nil, err
	}
	if stage == StageInit || stage == StageAdd {
		return p, nil
	}

	mode := types.LinkModeSymlink
	if stage == StageCompleteWithCopy {
		mode = types.LinkModeCopy
	}
	for _, dotfile := range []string{p.Bashrc, p.TmuxDir} {
		if _, err := add.AddDotfile(add.AddDotfileOptions{
			Dotfile: dotfile, Project: p.Project, Mode: mode, Context: ctx, FileSystem: fs,
		}); err != nil {
			return nil, err
		}
	}
	switch stage {
	case StageComplete, StageCompleteWithCopy:
		return p, nil
	case StageNewMachine:
		for _, link := range []string{p.Bashrc, p.TmuxDir} {
			if err := fs.Remove(link); err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to remove %s", link)
			}
		}
		return p, nil
	default:
		panic(fmt.Sprintf("examples: unknown stage %q", stage))
	}
}
