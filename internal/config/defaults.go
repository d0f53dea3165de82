// Package config provides configuration loading and defaults for clarify.
package config

// DefaultConfigDir is the default location for clarify configuration.
const DefaultConfigDir = "~/.config/clarify"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultFallbackScore is substituted for the clarity score when the
// detector fails inside a combined analysis run.
const DefaultFallbackScore = 50

// DefaultLatency disables simulated processing delay. The delay exists to
// emulate a remote model backend's response time and never changes results.
var DefaultLatency = Latency{}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
