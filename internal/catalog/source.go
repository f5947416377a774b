package catalog

import (
	"context"
)

// Source performs the catalog request and returns the raw response body.
// Errors follow the API client contract: common.ErrNetworkUnreachable when no response
// arrived, *common.ServerError for a non-2xx answer.
type Source interface {
	Fetch(ctx context.Context, endpoint string, payload any) ([]byte, error)
}
