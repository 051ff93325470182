package types

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform tags a target operating system in per-platform dotfile references
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformMac     Platform = "mac"
	PlatformWindows Platform = "windows"
)

// AllPlatforms lists every known platform in a stable order
var AllPlatforms = []Platform{PlatformLinux, PlatformMac, PlatformWindows}

// ParsePlatform parses a platform tag. "darwin" and "macos" are accepted
// as aliases for mac.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linux":
		return PlatformLinux, nil
	case "mac", "macos", "darwin":
		return PlatformMac, nil
	case "windows":
		return PlatformWindows, nil
	default:
		return "", fmt.Errorf("unknown platform %q (expected one of linux, mac, windows)", s)
	}
}

// IsValid reports whether p is one of the known platforms
func (p Platform) IsValid() bool {
	for _, known := range AllPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

// String returns the platform tag
func (p Platform) String() string {
	return string(p)
}

// CurrentPlatform returns the platform dotman is running on
func CurrentPlatform() Platform {
	return platformForGOOS(runtime.GOOS)
}

func platformForGOOS(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformMac
	case "windows":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}
