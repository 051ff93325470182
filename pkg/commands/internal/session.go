// Package internal holds the plumbing shared by the dotman commands.
package internal

import (
	"github.com/AllaVinner/dotman/pkg/config"
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/filesystem"
	"github.com/AllaVinner/dotman/pkg/links"
	"github.com/AllaVinner/dotman/pkg/paths"
	"github.com/AllaVinner/dotman/pkg/types"
)

// Session is the resolved environment of one command invocation
type Session struct {
	Ctx     *paths.Context
	FS      types.FS
	Project string
}

// NewSession resolves the context (nil means paths.Current), the
// filesystem (nil means the OS) and the project path (empty means cwd).
func NewSession(project string, ctx *paths.Context, fs types.FS) (*Session, error) {
	ctx, err := paths.OrCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if fs == nil {
		fs = filesystem.NewOS()
	}
	return &Session{
		Ctx:     ctx,
		FS:      fs,
		Project: paths.Resolve(project, ctx),
	}, nil
}

// LoadConfig reads the project config
func (s *Session) LoadConfig() (*config.Config, error) {
	return config.Load(s.Project, s.FS)
}

// SaveConfig writes the project config
func (s *Session) SaveConfig(cfg *config.Config) error {
	return config.Save(cfg, s.Project, s.FS)
}

// TargetKey turns a user supplied target into its config key
func (s *Session) TargetKey(target string) (string, error) {
	return paths.FormatTarget(target, s.Project, s.Ctx)
}

// ResolveTarget resolves one user supplied target into a single element
// batch, failing when it is not configured.
func (s *Session) ResolveTarget(cfg *config.Config, target string, mode types.LinkMode) ([]types.Link, error) {
	if target == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no target given")
	}
	key, err := s.TargetKey(target)
	if err != nil {
		return nil, err
	}
	ref, err := links.Lookup(cfg, key, target, s.Project)
	if err != nil {
		return nil, err
	}
	link, err := links.Resolve(s.Project, key, ref, mode, s.Ctx)
	if err != nil {
		return nil, err
	}
	return []types.Link{link}, nil
}
