package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/punyakios/go-kios-client/internal/common"
	"github.com/punyakios/go-kios-client/internal/models"
)

const (
	endpointProfile      = "/api/user/profile"
	endpointDeposit      = "/api/user/deposit"
	endpointVersionCheck = "/api/app-config/version-check"
)

// decodeData unmarshals the data member of the response envelope into T.
// A body without a data member is decoded as T itself.
func decodeData[T any](body []byte) (T, models.APIResponse, error) {
	var (
		result   T
		envelope models.APIResponse
	)

	if err := json.Unmarshal(body, &envelope); err != nil {
		return result, envelope, fmt.Errorf("%w: %w", common.ErrMalformedResponse, err)
	}

	data := []byte(envelope.Data)
	if len(data) == 0 || string(data) == "null" {
		data = body
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, envelope, fmt.Errorf("%w: %w", common.ErrMalformedResponse, err)
	}
	return result, envelope, nil
}
