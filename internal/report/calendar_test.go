package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

func TestProjectCalendar(t *testing.T) {
	events := []model.WeatherEvent{
		{Date: "2024-01-05", Intensity: model.RainLight},
		{Date: "2024-01-05", Intensity: model.RainHeavy}, // second event same day is ignored
		{Date: "2024-01-31", Intensity: model.RainModerate},
		{Date: "2024-02-01", Intensity: model.RainHeavy}, // outside the month
	}

	grid := ProjectCalendar(time.January, 2024, events)

	assert.Equal(t, time.January, grid.Month)
	assert.Equal(t, 2024, grid.Year)
	// 2024-01-01 was a Monday.
	assert.Equal(t, 1, grid.Leading)
	assert.Len(t, grid.Days, 31)

	assert.Equal(t, model.RainLight, grid.Days[4].Intensity)
	assert.Equal(t, model.RainModerate, grid.Days[30].Intensity)
	assert.Equal(t, model.RainIntensity(""), grid.Days[0].Intensity)
}

func TestProjectCalendarLeapFebruary(t *testing.T) {
	grid := ProjectCalendar(time.February, 2024, nil)
	assert.Len(t, grid.Days, 29)
	// 2024-02-01 was a Thursday.
	assert.Equal(t, 4, grid.Leading)
}

func TestNavigate(t *testing.T) {
	testCases := []struct {
		name      string
		month     time.Month
		year      int
		delta     int
		wantMonth time.Month
		wantYear  int
	}{
		{name: "Forward within year", month: time.March, year: 2024, delta: 1, wantMonth: time.April, wantYear: 2024},
		{name: "December wraps forward", month: time.December, year: 2024, delta: 1, wantMonth: time.January, wantYear: 2025},
		{name: "January wraps backward", month: time.January, year: 2025, delta: -1, wantMonth: time.December, wantYear: 2024},
		{name: "Multiple months forward", month: time.November, year: 2024, delta: 3, wantMonth: time.February, wantYear: 2025},
		{name: "Multiple months backward", month: time.February, year: 2024, delta: -14, wantMonth: time.December, wantYear: 2022},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			month, year := Navigate(tc.month, tc.year, tc.delta)
			assert.Equal(t, tc.wantMonth, month)
			assert.Equal(t, tc.wantYear, year)
		})
	}
}
