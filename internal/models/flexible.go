package models

import (
	"bytes"
	"encoding/json"
)

// Flexible holds a JSON scalar that the API sends either as a number or as a string.
type Flexible string

func (f *Flexible) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Flexible(s)
		return nil
	}
	*f = Flexible(b)
	return nil
}

func (f Flexible) String() string {
	return string(f)
}
