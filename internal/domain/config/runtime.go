package config

import (
	"time"
)

// OutputFormat selects how command results are rendered
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	OutDir      string // Foundry artifacts directory, absolute

	// Context settings
	Profile string   // Foundry profile
	Network *Network // nil if not specified

	// Execution settings
	Debug          bool
	NonInteractive bool
	Format         OutputFormat
	Timeout        time.Duration

	// Resolved configurations
	FoundryConfig *FoundryConfig
}

// Network represents network configuration
type Network struct {
	Name   string `json:"name"`
	RPCURL string `json:"rpcUrl"`
}
