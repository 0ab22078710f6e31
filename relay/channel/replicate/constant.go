package replicate

import "time"

// Fixed image prediction settings.
const (
	OutputFormat    = "webp"
	OutputQuality   = 80
	SafetyTolerance = 2
)

// PollInterval is how often a running prediction is re-fetched.
const PollInterval = time.Second
