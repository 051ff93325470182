package types

import "fmt"

// LinkMode selects how the dotfile side is materialized
type LinkMode string

const (
	// LinkModeSymlink keeps a symlink at the dotfile location pointing into the project
	LinkModeSymlink LinkMode = "symlink"
	// LinkModeCopy keeps an independent copy at the dotfile location
	LinkModeCopy LinkMode = "copy"
)

// ParseLinkMode parses a link mode, defaulting to symlink for the empty string
func ParseLinkMode(s string) (LinkMode, error) {
	switch s {
	case "", string(LinkModeSymlink):
		return LinkModeSymlink, nil
	case string(LinkModeCopy):
		return LinkModeCopy, nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected symlink or copy)", s)
	}
}

// Link is a config entry resolved against the current context. It is
// computed on demand and never persisted.
type Link struct {
	// TargetKey is the project-relative config key, e.g. "tmux"
	TargetKey string `json:"target"`
	// Target is the absolute path of the authoritative copy inside the project
	Target string `json:"targetPath"`
	// Portable is the dotfile reference as stored, e.g. "~/dot_config/tmux"
	Portable string `json:"portable"`
	// Dotfile is the absolute dotfile location
	Dotfile string `json:"dotfile"`
	// Mode is how the dotfile side is (or will be) materialized
	Mode LinkMode `json:"mode"`
}
