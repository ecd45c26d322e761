package config

import "time"

// Application settings.
const (
	AppName    = "trainlock"
	DBFileName = "trainlock.db"

	// SchemaVersion travels with every persisted or synced document.
	SchemaVersion = 1
)

// Plan shape. The target date is the next August 1 strictly after "now";
// every block advances the cursor by exactly eight weeks.
const (
	TargetMonth      = time.August
	TargetDay        = 1
	PhaseWeeks       = 8
	SessionsPerWeek  = 5
	BlockAdvanceDays = PhaseWeeks * 7
)

// Sync defaults.
const (
	GistAPIBaseURL   = "https://api.github.com"
	GistFileName     = "trainlock.json"
	TransportTimeout = 15 * time.Second
)
