package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockMinutes(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  int
		expectErr bool
	}{
		{name: "Midnight", raw: "00:00", expected: 0},
		{name: "Morning", raw: "08:30", expected: 510},
		{name: "Single digit hour", raw: "7:05", expected: 425},
		{name: "End of day", raw: "23:59", expected: 1439},
		{name: "Hour out of range", raw: "24:00", expectErr: true},
		{name: "Minute out of range", raw: "10:60", expectErr: true},
		{name: "Garbage", raw: "noon", expectErr: true},
		{name: "Empty", raw: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ClockMinutes(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestIntervalMinutes(t *testing.T) {
	testCases := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{name: "Same day", start: "08:00", end: "12:30", expected: 270},
		{name: "Zero length", start: "10:00", end: "10:00", expected: 0},
		{name: "Crosses midnight", start: "22:00", end: "02:00", expected: 240},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IntervalMinutes(tc.start, tc.end)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPair(t *testing.T) {
	sl, err := Pair("3-7")
	assert.NoError(t, err)
	assert.Equal(t, SiteLocation{SiteID: 3, LocationID: 7}, sl)
	assert.Equal(t, "3-7", PairKey(3, 7))

	_, err = Pair("3")
	assert.Error(t, err)
	_, err = Pair("a-b")
	assert.Error(t, err)
}
