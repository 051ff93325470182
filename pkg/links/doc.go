// Package links is the link engine shared by the dotman commands.
//
// A config entry becomes a types.Link once it is resolved against a
// paths.Context. The package then answers three questions about a link:
// can it be set up (CheckSetup), can it be synced (CheckSyncCompatible) and
// what state is it in (Classify). Materialize and Refresh perform the
// filesystem work. Batches run in two passes: Plan validates every entry
// and their dotfile paths against each other without touching the
// filesystem, Execute applies them in order through a synthfs pipeline.
package links

import "github.com/AllaVinner/dotman/pkg/logging"

var log = logging.GetLogger("links")
