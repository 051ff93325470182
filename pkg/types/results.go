package types

// AddResult describes a dotfile brought under management by add
type AddResult struct {
	Project string `json:"project"`
	Link    Link   `json:"link"`
}

// SetupResult lists the links created by setup
type SetupResult struct {
	Project string `json:"project"`
	Links   []Link `json:"links"`
}

// SyncDirection selects which side of a copy-mode link is refreshed
type SyncDirection string

const (
	// SyncPush copies the project-side target over the dotfile
	SyncPush SyncDirection = "push"
	// SyncPull copies the dotfile over the project-side target
	SyncPull SyncDirection = "pull"
)

// SyncResult lists the links refreshed by sync
type SyncResult struct {
	Project   string        `json:"project"`
	Direction SyncDirection `json:"direction"`
	Links     []Link        `json:"links"`
}

// EditResult describes a config-only change of a target's dotfile reference
type EditResult struct {
	Project   string `json:"project"`
	TargetKey string `json:"target"`
	// Platform is empty when the edit applied to a single reference
	Platform Platform `json:"platform,omitempty"`
	Previous string   `json:"previous"`
	Current  string   `json:"current"`
	// Promoted is true when a single reference became a per-platform map
	Promoted bool `json:"promoted"`
}

// InitResult describes a freshly initialized project
type InitResult struct {
	Project    string `json:"project"`
	ConfigPath string `json:"configPath"`
}
