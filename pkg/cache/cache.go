// Package cache provides caching for computed layouts.
//
// Layout runs are deterministic, so a layout is fully identified by the hash
// of its diagram plus the layout options. The package defines a backend
// interface ([Cache]) with file, Redis, and null implementations, and a
// [Keyer] that turns diagram hashes and options into stable cache keys.
package cache

import (
	"context"
	"time"
)

// Default TTLs per key type. Layouts are pure functions of their inputs, so
// long TTLs are safe; the TTL mainly bounds disk usage for abandoned diagrams.
const (
	LayoutTTL  = 7 * 24 * time.Hour
	DiagramTTL = 30 * 24 * time.Hour
)

// Cache is the storage backend interface.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// errors are reserved for backend failures. A ttl of zero means no expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LayoutKeyOpts are the layout options that affect the computed positions.
// Two runs with the same diagram hash and the same opts produce identical
// layouts, so they share a cache entry.
type LayoutKeyOpts struct {
	Algorithm    string  `json:"algorithm"`
	Direction    string  `json:"direction"`
	NodeSpacing  float64 `json:"node_spacing"`
	LevelSpacing float64 `json:"level_spacing"`
	Padding      float64 `json:"padding"`
	Alignment    string  `json:"alignment"`
	Seed         uint64  `json:"seed"`
}

// Keyer generates cache keys. Implementations must be deterministic: the same
// inputs always yield the same key.
type Keyer interface {
	// DiagramKey generates a key for storing a diagram by content hash.
	DiagramKey(diagramHash string) string

	// LayoutKey generates a key for a computed layout.
	LayoutKey(diagramHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a type prefix plus a SHA-256 hash
// of the identifying inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DiagramKey generates a key for diagram storage.
func (k *DefaultKeyer) DiagramKey(diagramHash string) string {
	return "diagram:" + diagramHash
}

// LayoutKey generates a key for layout caching.
// The options are hashed into the key, so any change invalidates the entry.
func (k *DefaultKeyer) LayoutKey(diagramHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", diagramHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
