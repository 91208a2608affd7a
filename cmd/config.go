package cmd

import "time"

// Config carries every externally supplied setting of the labeling service.
// Values arrive as strings from the environment; typed accessors apply the
// operational defaults.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StagingTTL is how long a generated batch may sit uncommitted before
	// the sweep job evicts it, e.g. "30m".
	StagingTTL string

	// RenderWorkers bounds concurrent page preparation in the PDF renderer.
	RenderWorkers int

	// DefaultLabelFormat is the page geometry used when a print request
	// names none, e.g. "50x100".
	DefaultLabelFormat string
}

const defaultStagingTTL = 30 * time.Minute

// StagingTTLDuration parses the staging TTL, falling back to the default on
// an empty or malformed value.
func (c Config) StagingTTLDuration() time.Duration {
	ttl, err := time.ParseDuration(c.StagingTTL)
	if err != nil || ttl <= 0 {
		return defaultStagingTTL
	}
	return ttl
}
