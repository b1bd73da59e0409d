package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ExternalID accepts identifiers the gateway sends either as JSON strings or
// as JSON numbers.
type ExternalID string

func (id *ExternalID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ExternalID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("external id must be a string or a number")
	}
	*id = ExternalID(n.String())
	return nil
}

func (id ExternalID) String() string {
	return string(id)
}
