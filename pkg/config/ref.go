package config

import (
	"fmt"
	"sort"

	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/types"
)

// RefKind tells which variant a DotfileRef holds
type RefKind int

const (
	// RefSingle is one portable path used on every platform
	RefSingle RefKind = iota + 1
	// RefPlatform maps each platform to its own portable path
	RefPlatform
)

func (k RefKind) String() string {
	switch k {
	case RefSingle:
		return "single"
	case RefPlatform:
		return "platform"
	default:
		return fmt.Sprintf("RefKind(%d)", int(k))
	}
}

// DotfileRef is the dotfile side of a config entry. Build it with
// SingleRef or PlatformRef; the zero value is not a valid reference.
type DotfileRef struct {
	Kind      RefKind
	Path      string
	Platforms map[types.Platform]string
}

// SingleRef returns a reference used identically on all platforms
func SingleRef(portable string) DotfileRef {
	return DotfileRef{Kind: RefSingle, Path: portable}
}

// PlatformRef returns a per-platform reference. The map is copied.
func PlatformRef(paths map[types.Platform]string) DotfileRef {
	m := make(map[types.Platform]string, len(paths))
	for p, v := range paths {
		m[p] = v
	}
	return DotfileRef{Kind: RefPlatform, Platforms: m}
}

// For returns the portable path to use on platform
func (r DotfileRef) For(platform types.Platform) (string, error) {
	switch r.Kind {
	case RefSingle:
		return r.Path, nil
	case RefPlatform:
		p, ok := r.Platforms[platform]
		if !ok {
			return "", errors.Newf(errors.ErrPlatformMissing,
				"Dotfile is not configured for platform %s.", platform).
				WithDetail("platform", string(platform))
		}
		return p, nil
	default:
		panic(fmt.Sprintf("config: unknown dotfile reference kind %v", r.Kind))
	}
}

// ConfiguredPlatforms returns the platforms with an entry, in the order of
// types.AllPlatforms. A single reference covers every platform.
func (r DotfileRef) ConfiguredPlatforms() []types.Platform {
	switch r.Kind {
	case RefSingle:
		return append([]types.Platform(nil), types.AllPlatforms...)
	case RefPlatform:
		var out []types.Platform
		for _, p := range types.AllPlatforms {
			if _, ok := r.Platforms[p]; ok {
				out = append(out, p)
			}
		}
		return out
	default:
		panic(fmt.Sprintf("config: unknown dotfile reference kind %v", r.Kind))
	}
}

// Equal reports whether two references hold the same variant and paths
func (r DotfileRef) Equal(other DotfileRef) bool {
	if r.Kind != other.Kind {
		return false
	}
	switch r.Kind {
	case RefSingle:
		return r.Path == other.Path
	case RefPlatform:
		if len(r.Platforms) != len(other.Platforms) {
			return false
		}
		for p, v := range r.Platforms {
			if ov, ok := other.Platforms[p]; !ok || ov != v {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("config: unknown dotfile reference kind %v", r.Kind))
	}
}

// String renders the reference for logs and text output
func (r DotfileRef) String() string {
	switch r.Kind {
	case RefSingle:
		return r.Path
	case RefPlatform:
		keys := make([]string, 0, len(r.Platforms))
		for p := range r.Platforms {
			keys = append(keys, string(p))
		}
		sort.Strings(keys)
		s := "{"
		for i, k := range keys {
			if i > 0 {
				s += ", "
			}
			s += k + ": " + r.Platforms[types.Platform(k)]
		}
		return s + "}"
	default:
		panic(fmt.Sprintf("config: unknown dotfile reference kind %v", r.Kind))
	}
}

// toTOML returns the value stored under the entry's key
func (r DotfileRef) toTOML() interface{} {
	switch r.Kind {
	case RefSingle:
		return r.Path
	case RefPlatform:
		m := make(map[string]interface{}, len(r.Platforms))
		for p, v := range r.Platforms {
			m[string(p)] = v
		}
		return m
	default:
		panic(fmt.Sprintf("config: unknown dotfile reference kind %v", r.Kind))
	}
}
