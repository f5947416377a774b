package models

import (
	"encoding/json"
)

// CacheSchemaVersion is bumped whenever the persisted shape of a cached value changes.
// Entries written with another version are discarded on read.
const CacheSchemaVersion = 1

type CacheEnvelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Timestamp     int64           `json:"timestamp"`
	Value         json.RawMessage `json:"value"`
}

// IsZero reports whether the envelope was never written.
func (e CacheEnvelope) IsZero() bool {
	return e.SchemaVersion == 0 && e.Timestamp == 0 && len(e.Value) == 0
}
