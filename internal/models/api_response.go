package models

import (
	"encoding/json"
	"strings"
)

// APIResponse is the envelope every storefront endpoint answers with.
type APIResponse struct {
	Status  ResponseStatus  `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ResponseStatus is sent as a boolean by some endpoints and as "success" by others.
type ResponseStatus bool

func (s *ResponseStatus) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*s = ResponseStatus(v)
	case float64:
		*s = v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "success", "ok", "true", "1":
			*s = true
		default:
			*s = false
		}
	default:
		*s = false
	}
	return nil
}
