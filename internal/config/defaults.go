package config

import "github.com/mynameistito/screenshotgun-app-v2/internal/capture"

// Default constants for application configuration
const (
	DefaultLogLevel  = "info"
	DefaultJSONLog   = false
	DefaultEndpoint  = capture.DefaultEndpoint
	DefaultHeadless  = true
	DefaultOutputDir = "."
)

// DefaultAccessKey is the build-time fallback credential. It is empty in
// source and may be injected for bundled builds:
//
//	-ldflags "-X .../internal/config.DefaultAccessKey=<key>"
//
// It sits at the bottom of the resolution order: flag > environment >
// keyring > this value.
var DefaultAccessKey = ""
