package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekday(t *testing.T) {
	cases := []struct {
		date string
		idx  int
		name string
	}{
		{"2025-12-25", 4, "Thursday"},
		{"2025-10-05", 0, "Sunday"},
		{"2025-10-11", 6, "Saturday"},
		{"2024-02-29", 4, "Thursday"}, // 闰日
	}
	for _, c := range cases {
		idx, name, err := Weekday(c.date)
		require.NoError(t, err, c.date)
		assert.Equal(t, c.idx, idx, c.date)
		assert.Equal(t, c.name, name, c.date)
	}
}

func TestWeekdayInvalidDate(t *testing.T) {
	for _, date := range []string{"", "2025-13-01", "25-12-2025", "not-a-date"} {
		_, _, err := Weekday(date)
		assert.Error(t, err, date)
	}
}
