package dto

import (
	"encoding/json"
	"time"
)

// RecordDTO represents a data transfer object (DTO) for a stored record.
type RecordDTO struct {
	ID        int             `json:"id"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

// RecordCreateDTO represents a data transfer object (DTO) for creating a record request.
// Data is nil when the key is absent and holds the literal null when it was sent as null.
type RecordCreateDTO struct {
	Data json.RawMessage `json:"data"`
}
