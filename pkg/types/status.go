package types

// LinkState classifies a config entry during status
type LinkState string

const (
	LinkStateComplete             LinkState = "complete"
	LinkStateCompleteCopy         LinkState = "complete-copy"
	LinkStateMissingTarget        LinkState = "missing-target"
	LinkStateMissingDotfile       LinkState = "missing-dotfile"
	LinkStateWrongLink            LinkState = "wrong-link"
	LinkStateDrifted              LinkState = "drifted"
	LinkStateKindMismatch         LinkState = "kind-mismatch"
	LinkStateUnconfiguredPlatform LinkState = "unconfigured-platform"
)

// Status messages reported for each state
const (
	StatusComplete             = "Complete"
	StatusCompleteCopy         = "Complete - Copy"
	StatusMissingTarget        = "Missing target"
	StatusMissingDotfile       = "Missing Dotfile"
	StatusWrongLink            = "Dotfile link does not point to target"
	StatusUnconfiguredPlatform = "Platform not configured"
	StatusFileKindMismatch     = "Dotfile is not a symlink, nor a file which the target is"
	StatusDirKindMismatch      = "Dotfile is not a symlink, nor a directory which the target is"
	StatusFileContentDiffers   = "Dotfile is not a symlink nor equal in content"
	StatusExtraFilesFormat     = "Dotfile is not a symlink, and contains extra files compared to target: %s"
	StatusMissingFilesFormat   = "Dotfile is not a symlink, and is missing files compared to target: %s"
	StatusFileDiffersFormat    = "Dotfile is not a symlink, and file %s is not identical to target."
)

// IsHealthy reports whether the dotfile side matches the target
func (s LinkState) IsHealthy() bool {
	return s == LinkStateComplete || s == LinkStateCompleteCopy
}

// LinkStatus is the audited state of one config entry
type LinkStatus struct {
	TargetKey string    `json:"target"`
	Target    string    `json:"targetPath"`
	Dotfile   string    `json:"dotfile"`
	State     LinkState `json:"state"`
	Status    string    `json:"status"`
}

// ProjectStatus is the audited state of every entry in a project
type ProjectStatus struct {
	Project  string       `json:"project"`
	Platform Platform     `json:"platform"`
	Links    []LinkStatus `json:"links"`
}

// Healthy reports whether every entry is complete
func (p *ProjectStatus) Healthy() bool {
	for _, l := range p.Links {
		if !l.State.IsHealthy() {
			return false
		}
	}
	return true
}
