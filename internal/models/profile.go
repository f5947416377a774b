package models

import (
	"encoding/json"
	"strings"
)

type Profile struct {
	ID               Flexible  `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Balance          Decimal   `json:"balance"`
	BiometricEnabled FlagValue `json:"biometric_enabled"`
}

// UpdateProfileRequest is sent to POST /api/user/profile. An empty request only fetches.
type UpdateProfileRequest struct {
	Name             string `json:"name,omitempty" validate:"omitempty,noStartEndSpaces"`
	Email            string `json:"email,omitempty" validate:"omitempty,email"`
	Phone            string `json:"phone,omitempty" validate:"omitempty,msisdn"`
	BiometricEnabled *bool  `json:"biometric_enabled,omitempty"`
}

// FlagValue decodes a server flag sent as true/false, 1/0 or "true"/"1".
type FlagValue bool

func (f *FlagValue) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*f = FlagValue(v)
	case float64:
		*f = v != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		*f = s == "true" || s == "1"
	default:
		*f = false
	}
	return nil
}
