package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUser(t *testing.T) {
	data := []struct {
		name     string
		username string
		password string
		role     string
		valid    bool
	}{
		{"all present", "alice", "secret", "admin", true},
		{"missing username", "", "secret", "admin", false},
		{"missing password", "alice", "", "admin", false},
		{"missing role", "alice", "secret", "", false},
		{"blank username", "   ", "secret", "admin", false},
		{"all missing", "", "", "", false},
	}

	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			err := ValidateUser(d.username, d.password, d.role)
			if d.valid {
				assert.NoError(t, err, "Expected a valid user, but got an error")
			} else {
				assert.ErrorIs(t, err, ErrMissingField, "Expected a missing field error")
			}
		})
	}
}

func TestValidateData(t *testing.T) {
	data := []struct {
		name  string
		input json.RawMessage
		valid bool
	}{
		{"absent", nil, false},
		{"empty", json.RawMessage(""), false},
		{"null", json.RawMessage("null"), false},
		{"padded null", json.RawMessage(" null "), false},
		{"object", json.RawMessage(`{"x":1}`), true},
		{"empty object", json.RawMessage(`{}`), true},
		{"array", json.RawMessage(`[1,2,3]`), true},
		{"string", json.RawMessage(`"text"`), true},
		{"zero", json.RawMessage(`0`), true},
		{"false", json.RawMessage(`false`), true},
	}

	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			err := ValidateData(d.input)
			if d.valid {
				assert.NoError(t, err, "Expected valid data, but got an error")
			} else {
				assert.ErrorIs(t, err, ErrMissingData, "Expected a missing data error")
			}
		})
	}
}
