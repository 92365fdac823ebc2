package config

import "github.com/txbm/blog-posts/internal/version"

// SaveVersion consumes cfg and records it as an immutable version-1 snapshot.
// cfg moves into the wrapper as-is: no slice is reallocated, so any capacity
// the caller reserved survives the transfer exactly. Callers that still need
// their own copy afterward must pass cfg.Clone() instead.
func SaveVersion(cfg Config) version.Versioned[Config] {
	return version.Capture(cfg)
}
