package paths

import (
	"path/filepath"
	"strings"

	"github.com/AllaVinner/dotman/pkg/errors"
)

const sep = string(filepath.Separator)

// Resolve turns path into a normalized absolute path without touching the
// filesystem. Absolute paths are cleaned, "~" prefixed paths are taken
// relative to ctx.Home and everything else relative to ctx.Cwd. ".."
// segments never climb above ctx.Root.
func Resolve(path string, ctx *Context) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if rest, ok := splitHome(path); ok {
		return clampJoin(ctx.Root, ctx.Home, rest)
	}
	return clampJoin(ctx.Root, ctx.Cwd, path)
}

// splitHome reports whether path starts with the home marker and returns
// the remainder after it.
func splitHome(path string) (string, bool) {
	if path == HomeMarker {
		return "", true
	}
	if strings.HasPrefix(path, HomeMarker+"/") || strings.HasPrefix(path, HomeMarker+sep) {
		return path[len(HomeMarker)+1:], true
	}
	return "", false
}

// clampJoin joins rel onto base and cleans the result, treating root as the
// top of the tree so that surplus ".." segments stop there.
func clampJoin(root, base, rel string) string {
	if rel == "" {
		return filepath.Clean(base)
	}
	if !IsWithin(base, root) {
		return filepath.Clean(base + sep + rel)
	}
	fromRoot, err := filepath.Rel(root, base)
	if err != nil {
		return filepath.Clean(base + sep + rel)
	}
	// Cleaning a rooted path drops ".." at the top, which is the clamp.
	clamped := filepath.Clean(sep + fromRoot + sep + rel)
	return filepath.Join(root, clamped)
}

// IsWithin reports whether path equals dir or lies below it. Both must be
// clean absolute paths.
func IsWithin(path, dir string) bool {
	path, dir = filepath.Clean(path), filepath.Clean(dir)
	if path == dir {
		return true
	}
	if dir == sep {
		return strings.HasPrefix(path, sep)
	}
	return strings.HasPrefix(path, dir+sep)
}

// FormatPortable returns the stored form of an absolute dotfile path:
// "~/rel" under home, otherwise "/rel" measured from the context root.
func FormatPortable(absolute string, ctx *Context) (string, error) {
	absolute = filepath.Clean(absolute)
	if IsWithin(absolute, ctx.Home) {
		rel, err := filepath.Rel(ctx.Home, absolute)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInternal, "failed to relate %s to home %s", absolute, ctx.Home)
		}
		if rel == "." {
			return HomeMarker, nil
		}
		return HomeMarker + "/" + filepath.ToSlash(rel), nil
	}
	if IsWithin(absolute, ctx.Root) {
		rel, err := filepath.Rel(ctx.Root, absolute)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInternal, "failed to relate %s to root %s", absolute, ctx.Root)
		}
		if rel == "." {
			return "/", nil
		}
		return "/" + filepath.ToSlash(rel), nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "Path %s must be relative to root %s.", absolute, ctx.Root)
}

// ExpandPortable is the inverse of FormatPortable
func ExpandPortable(portable string, ctx *Context) string {
	if rest, ok := splitHome(portable); ok {
		return clampJoin(ctx.Root, ctx.Home, filepath.FromSlash(rest))
	}
	if strings.HasPrefix(portable, "/") {
		return clampJoin(ctx.Root, ctx.Root, filepath.FromSlash(strings.TrimPrefix(portable, "/")))
	}
	return Resolve(filepath.FromSlash(portable), ctx)
}

// FormatTarget resolves target against project and returns its
// forward-slash, project-relative key. The target must lie strictly inside
// the project.
func FormatTarget(target, project string, ctx *Context) (string, error) {
	project = Resolve(project, ctx)
	var full string
	if filepath.IsAbs(target) {
		full = filepath.Clean(target)
	} else {
		full = filepath.Clean(project + sep + target)
	}
	if full == project || !IsWithin(full, project) {
		return "", errors.Newf(errors.ErrTargetOutside,
			"Target %s resolves to %s, which is outside project %s.", target, full, project)
	}
	rel, err := filepath.Rel(project, full)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to relate %s to project %s", full, project)
	}
	return filepath.ToSlash(rel), nil
}

// TargetPath returns the absolute path of a config key inside project
func TargetPath(key, project string) string {
	return filepath.Join(project, filepath.FromSlash(key))
}
