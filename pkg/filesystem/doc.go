// Package filesystem provides filesystem implementations for dotman.
//
// NewOS returns the types.FS used in production. The helpers in ops.go
// build the higher level primitives the link engine needs (existence
// checks that do not follow symlinks, recursive copies and moves) on top of
// any types.FS.
package filesystem
