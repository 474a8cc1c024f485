package services

import (
	"fmt"
	"time"

	"galaxydental/models"
)

// AvailabilityService computes bookable dates and time slots from a
// doctor's fixed weekly schedule. All methods are pure: "now" and
// "today" are passed in, never read from a clock, so results must be
// re-derived on every call rather than cached.
type AvailabilityService interface {
	ScheduleFor(doctorID string) models.WeeklySchedule
	IsBookable(schedule models.WeeklySchedule, date, today time.Time) bool
	Slots(schedule models.WeeklySchedule, date, now time.Time) []string
	MonthGrid(schedule models.WeeklySchedule, year int, month time.Month, today time.Time) models.MonthGrid
}

// DefaultAvailabilityService is the concrete implementation.
type DefaultAvailabilityService struct{}

// doctorSchedules maps each specialist to their weekly working window.
var doctorSchedules = map[string]models.WeeklySchedule{
	"dr-sharma": {
		Days:      []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
		StartHour: 10, EndHour: 14,
		Label: "Mon-Sat: 10AM - 2PM",
	},
	"dr-reddy": {
		Days:      []time.Weekday{time.Sunday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
		StartHour: 11, EndHour: 20,
		Label: "Tue-Sun: 11AM - 8PM",
	},
	"dr-priya": {
		Days:      []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
		StartHour: 16, EndHour: 21,
		Label: "Mon-Sat: 4PM - 9PM",
	},
}

// defaultSchedule applies when no doctor has been chosen yet.
var defaultSchedule = models.WeeklySchedule{
	Days: []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	},
	StartHour: 9, EndHour: 21,
	Label: "Daily: 9AM - 9PM",
}

// ScheduleFor returns the weekly schedule for the given doctor, or the
// permissive default when the doctor is empty or unknown.
func (s *DefaultAvailabilityService) ScheduleFor(doctorID string) models.WeeklySchedule {
	if sched, ok := doctorSchedules[doctorID]; ok {
		return sched
	}
	return defaultSchedule
}

// IsBookable reports whether the date can be booked: not before today
// and on one of the schedule's working weekdays.
func (s *DefaultAvailabilityService) IsBookable(schedule models.WeeklySchedule, date, today time.Time) bool {
	d := dayStart(date)
	if d.Before(dayStart(today)) {
		return false
	}
	return schedule.WorksOn(d.Weekday())
}

// Slots enumerates the half-hour-aligned slot labels for a date, from
// StartHour up to (exclusive) EndHour. When the date is the current day,
// slots whose instant is not strictly in the future are dropped.
func (s *DefaultAvailabilityService) Slots(schedule models.WeeklySchedule, date, now time.Time) []string {
	sameDay := dayStart(date).Equal(dayStart(now))
	slots := []string{}
	for hour := schedule.StartHour; hour < schedule.EndHour; hour++ {
		for _, minute := range []int{0, 30} {
			instant := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
			if sameDay && !instant.After(now) {
				continue
			}
			slots = append(slots, clockLabel(hour, minute))
		}
	}
	return slots
}

// MonthGrid renders one calendar month against the schedule. The grid
// carries a per-day bookable flag plus the weekday offset of the 1st.
func (s *DefaultAvailabilityService) MonthGrid(schedule models.WeeklySchedule, year int, month time.Month, today time.Time) models.MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	grid := models.MonthGrid{
		Year:         year,
		Month:        int(month),
		LeadingEmpty: int(first.Weekday()),
	}
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		grid.Days = append(grid.Days, models.CalendarDay{
			Day:      d.Day(),
			Date:     d.Format("2006-01-02"),
			Bookable: s.IsBookable(schedule, d, today),
			Today:    dayStart(d).Equal(dayStart(today)),
		})
	}
	return grid
}

// clockLabel formats an hour/minute pair in 12-hour notation, e.g.
// "9:30 AM", "12:00 PM", "1:00 PM".
func clockLabel(hour, minute int) string {
	h := hour
	if hour > 12 {
		h = hour - 12
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
