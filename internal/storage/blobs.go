// Package storage implements the persistence collaborator: a string-keyed
// blob store the history layer serializes its collections into. There is no
// transactional guarantee across keys; a missing key reads as absent and the
// caller falls back to an empty default.
package storage

import "context"

// Well-known blob keys.
const (
	KeySessions  = "workoutSessions"
	KeyBlocks    = "workoutBlocks"
	KeyHistory   = "exerciseHistory"
	KeyAnalytics = "exerciseAnalytics"
)

// Blobs is the key-value contract the history store persists through.
type Blobs interface {
	// Get returns the blob stored under key, or ok=false if absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores the blob under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
