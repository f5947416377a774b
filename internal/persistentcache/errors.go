package persistentcache

import (
	"errors"
	"fmt"

	"github.com/punyakios/go-kios-client/internal/models"
)

// ErrEmptyValue marks an envelope of the current schema that carries no value.
var ErrEmptyValue = errors.New("cache entry has no value")

type SchemaMismatchError struct {
	Got int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("cache schema version %d, want %d", e.Got, models.CacheSchemaVersion)
}
