package links

import (
	"github.com/AllaVinner/dotman/pkg/config"
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/paths"
	"github.com/AllaVinner/dotman/pkg/types"
)

// Lookup returns the reference configured for key or a
// TARGET_NOT_CONFIGURED error naming the target as the user gave it.
func Lookup(cfg *config.Config, key, given, project string) (config.DotfileRef, error) {
	ref, ok := cfg.Get(key)
	if !ok {
		return config.DotfileRef{}, errors.Newf(errors.ErrTargetNotConfigured,
			"Provided target %s is not configured in project %s.", given, project).
			WithDetail("target", key)
	}
	return ref, nil
}

// Resolve turns a config entry into a Link for the context's platform
func Resolve(project, key string, ref config.DotfileRef, mode types.LinkMode, ctx *paths.Context) (types.Link, error) {
	portable, err := ref.For(ctx.Platform)
	if err != nil {
		return types.Link{}, errors.Newf(errors.ErrPlatformMissing,
			"Target %s, in project %s, does not have a dotfile configured for platform %s.",
			key, project, ctx.Platform).
			WithDetail("target", key).
			WithDetail("platform", string(ctx.Platform))
	}
	if portable == "" {
		return types.Link{}, errors.Newf(errors.ErrEmptyDotfile,
			"Target %s in project %s is configured to empty.", key, project).
			WithDetail("target", key)
	}
	return types.Link{
		TargetKey: key,
		Target:    paths.TargetPath(key, project),
		Portable:  portable,
		Dotfile:   paths.ExpandPortable(portable, ctx),
		Mode:      mode,
	}, nil
}

// ResolveAll resolves every entry of cfg in target order. It stops at the
// first entry that cannot be resolved.
func ResolveAll(cfg *config.Config, project string, mode types.LinkMode, ctx *paths.Context) ([]types.Link, error) {
	links := make([]types.Link, 0, len(cfg.Dotfiles))
	for _, key := range cfg.Targets() {
		ref, _ := cfg.Get(key)
		link, err := Resolve(project, key, ref, mode, ctx)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}
