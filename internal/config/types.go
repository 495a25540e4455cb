package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into adapters and use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot    string // directory holding hardhat.config.*
	DeploymentsDir string // absolute, defaults to <root>/deployments
	ManifestPath   string // absolute, empty to search the default names
	NetworksFile   string // absolute, empty to use the built-in table only

	// Execution settings
	Parallelism int // network directories read at once
	NoColor     bool
	Debug       bool
	Timeout     time.Duration
}
