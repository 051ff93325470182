// Package paths provides the path algebra dotman is built on.
//
// Every path dotman handles is resolved against a Context: the current
// working directory, the home directory, the filesystem root and the
// active platform. Resolution is purely lexical. Nothing in this package
// touches the filesystem, so callers can validate a whole operation before
// moving, linking or deleting anything.
//
// # Portable paths
//
// Dotfile locations are stored in a portable form: paths under the home
// directory are written as "~/rel", everything else as an absolute path
// relative to the context root.
//
//	ctx, _ := paths.NewContext("/home/me/dotfiles", "/home/me", "/", types.PlatformLinux)
//	paths.Resolve("../.bashrc", ctx)                  // /home/me/.bashrc
//	paths.FormatPortable("/home/me/.config/tmux", ctx) // ~/.config/tmux
//	paths.FormatTarget("tmux/tmux.conf", "/home/me/dotfiles", ctx)
//	                                                  // tmux/tmux.conf
//
// # Context scoping
//
// Current returns the ambient context, created from the OS on first use.
// Override pushes a replacement and returns a function that restores the
// previous one; tests and the example builder use it to run against a
// fake home directory.
package paths
