// Package config handles the two kinds of configuration dotman reads.
//
// The project config (.dotman.toml) records which target inside a project
// is linked to which dotfile. It is loaded from disk at the start of every
// operation, mutated in memory and written back; nothing is cached between
// calls.
//
// User settings ($XDG_CONFIG_HOME/dotman/config.toml) only provide defaults
// for command line flags. They are layered over embedded defaults with
// koanf.
package config
