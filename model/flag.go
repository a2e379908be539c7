package model

type Flags struct {
	// Azure scope
	Subscription string

	// Mode selection
	Manage bool
	DryRun bool

	// Owner management
	Assignee     string
	Reservations string

	// CSV export
	Export    bool
	OutputDir string
}
