// Package testutil provides helpers shared by dotman's tests.
//
// Tests run against real temporary directories: dotman's behaviour depends
// on symlink, Lstat and rename semantics that only the OS filesystem gives
// faithfully. Key components:
//   - file helpers (CreateFile, CreateDir, CreateSymlink, ReadFile) that fail
//     the test instead of returning errors
//   - assertions for symlinks and file content
//   - NewTestContext, a validated paths.Context rooted in a temp dir
//   - FaultyFS, a types.FS wrapper that injects errors for chosen operations
package testutil
