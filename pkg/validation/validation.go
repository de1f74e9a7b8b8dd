package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var (
	// ErrMissingField is returned when a required text field is empty or absent.
	ErrMissingField = errors.New("username, password and role must not be empty")
	// ErrMissingData is returned when a record payload has no data.
	ErrMissingData = errors.New("missing 'data' in request body")
)

// ValidateUser checks that username, password and role are all present.
// Whitespace-only values count as absent.
func ValidateUser(username, password, role string) error {
	for _, field := range []string{username, password, role} {
		if strings.TrimSpace(field) == "" {
			return ErrMissingField
		}
	}

	return nil
}

// ValidateData checks that a record payload carries a data document.
// An absent key and an explicit JSON null are both treated as missing.
func ValidateData(data json.RawMessage) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrMissingData
	}

	return nil
}
