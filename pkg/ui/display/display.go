// Package display converts command results into a format-neutral view
// that the text and terminal renderers print.
package display

import (
	"fmt"

	"github.com/AllaVinner/dotman/pkg/types"
)

// Row is one line of a view, usually a single link
type Row struct {
	Label  string
	Detail string
	Status string
	State  types.LinkState
}

// View is what gets printed for a command result
type View struct {
	Command string
	Title   string
	Message string
	Rows    []Row
	Footer  string
}

// FromResult builds a view for a known result type. The second return is
// false for types it does not know how to present.
func FromResult(result interface{}) (*View, bool) {
	switch v := result.(type) {
	case *types.ProjectStatus:
		return fromStatus(v), true
	case *types.InitResult:
		return &View{
			Command: "init",
			Title:   v.Project,
			Message: fmt.Sprintf("Initialized dotman project, config at %s", v.ConfigPath),
		}, true
	case *types.AddResult:
		return &View{
			Command: "add",
			Title:   v.Project,
			Message: fmt.Sprintf("Added %s as %s (%s)", v.Link.Dotfile, v.Link.TargetKey, v.Link.Mode),
			Rows:    []Row{linkRow(v.Link)},
		}, true
	case *types.SetupResult:
		return fromLinks("setup", v.Project, "Set up", v.Links), true
	case *types.SyncResult:
		return fromLinks("sync", v.Project, fmt.Sprintf("Synced (%s)", v.Direction), v.Links), true
	case *types.EditResult:
		return fromEdit(v), true
	default:
		return nil, false
	}
}

func fromStatus(s *types.ProjectStatus) *View {
	view := &View{
		Command: "status",
		Title:   s.Project,
		Message: fmt.Sprintf("Platform: %s", s.Platform),
	}
	if len(s.Links) == 0 {
		view.Footer = "No dotfiles configured"
		return view
	}
	unhealthy := 0
	for _, l := range s.Links {
		if !l.State.IsHealthy() {
			unhealthy++
		}
		view.Rows = append(view.Rows, Row{
			Label:  l.TargetKey,
			Detail: l.Dotfile,
			Status: l.Status,
			State:  l.State,
		})
	}
	if unhealthy == 0 {
		view.Footer = fmt.Sprintf("All %d dotfiles complete", len(s.Links))
	} else {
		view.Footer = fmt.Sprintf("%d of %d dotfiles need attention", unhealthy, len(s.Links))
	}
	return view
}

func fromLinks(command, project, verb string, links []types.Link) *View {
	view := &View{Command: command, Title: project}
	if len(links) == 0 {
		view.Message = "Nothing to do"
		return view
	}
	view.Message = fmt.Sprintf("%s %d %s", verb, len(links), plural(len(links), "dotfile", "dotfiles"))
	for _, l := range links {
		view.Rows = append(view.Rows, linkRow(l))
	}
	return view
}

func fromEdit(e *types.EditResult) *View {
	scope := "all platforms"
	if e.Platform != "" {
		scope = "platform " + string(e.Platform)
	}
	view := &View{
		Command: "edit",
		Title:   e.Project,
		Message: fmt.Sprintf("Updated %s for %s", e.TargetKey, scope),
		Rows: []Row{{
			Label:  e.TargetKey,
			Detail: fmt.Sprintf("%s -> %s", e.Previous, e.Current),
		}},
	}
	if e.Promoted {
		view.Footer = "Target now uses per-platform dotfiles"
	}
	return view
}

func linkRow(l types.Link) Row {
	state := types.LinkStateComplete
	if l.Mode == types.LinkModeCopy {
		state = types.LinkStateCompleteCopy
	}
	return Row{
		Label:  l.TargetKey,
		Detail: l.Dotfile,
		Status: string(l.Mode),
		State:  state,
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
