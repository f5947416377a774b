// Package idgenerator generates the correlation ids attached to every API request.
// An id is an optional prefix, the epoch time in milliseconds and a base64 encoded UUID.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct {
	now func() time.Time
}

func New() Generator {
	return &IDGenerator{now: time.Now}
}

// NewWithClock is used by tests to pin the timestamp part.
func NewWithClock(now func() time.Time) Generator {
	return &IDGenerator{now: now}
}

// Generate returns "<prefix>-<epochMs><uuid>", or "<epochMs><uuid>" when no prefix is given.
func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	encodedUUID := rawURLEncodedUUID(uuid.New())
	epochTime := g.now().UnixMilli()

	if prefix == "" {
		return fmt.Sprintf("%d%s", epochTime, encodedUUID)
	}

	return fmt.Sprintf("%s-%d%s", prefix, epochTime, encodedUUID)
}

func rawURLEncodedUUID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}
