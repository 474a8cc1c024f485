package models

import "time"

// WeeklySchedule is a doctor's fixed weekly availability descriptor.
type WeeklySchedule struct {
	Days      []time.Weekday `json:"days"`
	StartHour int            `json:"startHour"`
	EndHour   int            `json:"endHour"`
	Label     string         `json:"label"`
}

// WorksOn reports whether the schedule covers the given weekday.
func (s WeeklySchedule) WorksOn(day time.Weekday) bool {
	for _, d := range s.Days {
		if d == day {
			return true
		}
	}
	return false
}

// CalendarDay is one cell of a month grid.
type CalendarDay struct {
	Day      int    `json:"day"`
	Date     string `json:"date"`
	Bookable bool   `json:"bookable"`
	Today    bool   `json:"today"`
}

// MonthGrid is a rendered calendar month for one doctor's schedule.
// LeadingEmpty is the weekday offset of the 1st (Sunday = 0), so the
// front end can pad the first row.
type MonthGrid struct {
	Year         int           `json:"year"`
	Month        int           `json:"month"`
	LeadingEmpty int           `json:"leadingEmpty"`
	Days         []CalendarDay `json:"days"`
}
