// Package types defines the core types and interfaces used throughout dotman.
// This includes the FS abstraction used by every filesystem-touching
// operation, the Platform and LinkMode enums, the runtime Link computed from
// a config entry, and the result structures returned by the commands.
package types
