package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/punyakios/go-kios-client/internal/common"
	"github.com/punyakios/go-kios-client/internal/models"
)

// extractItems reads data.<field> from the response envelope. An empty field picks the first
// key under data. With required unset a missing field yields no items instead of an error.
func extractItems(body []byte, field string, required bool) ([]models.ProductItem, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: response is not JSON", common.ErrMalformedResponse)
	}

	data := gjson.GetBytes(body, "data")
	if !data.IsObject() {
		return nil, fmt.Errorf("%w: missing data object", common.ErrMalformedResponse)
	}

	var list gjson.Result
	if field == "" {
		data.ForEach(func(_, value gjson.Result) bool {
			list = value
			return false
		})
	} else {
		list = data.Get(gjson.Escape(field))
	}

	if !list.Exists() || list.Type == gjson.Null {
		if required {
			return nil, fmt.Errorf("%w: missing data.%s", common.ErrMalformedResponse, field)
		}
		return []models.ProductItem{}, nil
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: data.%s is not a list", common.ErrMalformedResponse, field)
	}

	var items []models.ProductItem
	if err := json.Unmarshal([]byte(list.Raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrMalformedResponse, err)
	}

	return items, nil
}
