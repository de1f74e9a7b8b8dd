package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryTable(t *testing.T) {
	data := []struct {
		category Category
		table    string
		err      error
	}{
		{CategorySchedule, "schedule", nil},
		{CategoryShipment, "shipment", nil},
		{CategoryMiscellaneous, "miscellaneous", nil},
		{Category("users"), "", ErrUnknownCategory},
		{Category("schedule; DROP TABLE users"), "", ErrUnknownCategory},
		{Category(""), "", ErrUnknownCategory},
	}

	for _, d := range data {
		t.Run(string(d.category), func(t *testing.T) {
			table, err := d.category.Table()
			require.ErrorIs(t, err, d.err)
			require.Equal(t, d.table, table)
		})
	}
}
