package config

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

// Fingerprint returns the hex BLAKE3 digest of the record's canonical YAML
// encoding. Two records with equal content fingerprint identically no matter
// which allocation backs them, which is how the clone example shows that a
// duplicate is byte-equal while living in its own memory.
func (c *Config) Fingerprint() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
