package resolver

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Entry maps a distribution identifier (or "common", or a universal
// channel name) to a concrete package identifier.
type Entry map[string]string

// Document is the declarative package mapping, loaded once at start-up
// and read-only afterwards.
type Document struct {
	// Channels optionally overrides the universal channel order per
	// distribution: two entries, primary then backup.
	Channels map[string][]string `yaml:"channels"`

	// Packages maps logical keys to their per-distro and per-channel
	// identifiers.
	Packages map[string]Entry `yaml:"packages"`
}

// Load reads the mapping document at path. A missing document is not an
// error: resolution degrades to the built-in table, so Load returns nil
// and the caller proceeds.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.WithField("path", path).Debug("No mapping document, using built-in table only")
			return nil, nil
		}
		return nil, fmt.Errorf("reading mapping document: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing mapping document: %w", err)
	}
	return &doc, nil
}
