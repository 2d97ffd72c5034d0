package report

import (
	"fmt"
	"time"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

// CalendarDay is one day cell of the weather calendar. Intensity is empty
// when no rain was recorded that day.
type CalendarDay struct {
	Day       int                 `json:"day"`
	Intensity model.RainIntensity `json:"intensity,omitempty"`
}

// CalendarGrid is a month of weather, laid out week-first: Leading empty
// cells (week starts on Sunday) followed by one cell per day.
type CalendarGrid struct {
	Month   time.Month    `json:"month"`
	Year    int           `json:"year"`
	Leading int           `json:"leading"`
	Days    []CalendarDay `json:"days"`
}

// ProjectCalendar maps weather events onto the month grid. At most one
// event tags a day; extra events for the same date are ignored.
func ProjectCalendar(month time.Month, year int, events []model.WeatherEvent) CalendarGrid {
	byDate := make(map[string]model.RainIntensity)
	for _, e := range events {
		if _, ok := byDate[e.Date]; !ok {
			byDate[e.Date] = e.Intensity
		}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := CalendarGrid{
		Month:   month,
		Year:    year,
		Leading: int(first.Weekday()), // Sunday = 0
		Days:    make([]CalendarDay, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		grid.Days = append(grid.Days, CalendarDay{Day: day, Intensity: byDate[date]})
	}
	return grid
}

// Navigate moves the calendar by delta months, wrapping across year
// boundaries. Callers re-fetch the weather events for the new month before
// re-projecting.
func Navigate(month time.Month, year int, delta int) (time.Month, int) {
	m := int(month) + delta
	for m > 12 {
		m -= 12
		year++
	}
	for m < 1 {
		m += 12
		year--
	}
	return time.Month(m), year
}
