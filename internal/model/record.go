package model

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrUnknownCategory is returned when a record category has no backing table.
var ErrUnknownCategory = errors.New("unknown record category")

// Category identifies one of the record tables.
type Category string

const (
	// CategorySchedule is backed by the schedule table.
	CategorySchedule Category = "schedule"
	// CategoryShipment is backed by the shipment table.
	CategoryShipment Category = "shipment"
	// CategoryMiscellaneous is backed by the miscellaneous table.
	CategoryMiscellaneous Category = "miscellaneous"
)

// Categories lists every record category.
var Categories = []Category{CategorySchedule, CategoryShipment, CategoryMiscellaneous}

// Table returns the name of the table holding records of the category.
// The name is one of a fixed set and is safe to place into SQL text.
func (c Category) Table() (string, error) {
	switch c {
	case CategorySchedule, CategoryShipment, CategoryMiscellaneous:
		return string(c), nil
	default:
		return "", ErrUnknownCategory
	}
}

// Record represents a model for a schema-less JSON document stored in one of the record tables.
type Record struct {
	ID        int             `json:"id"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}
