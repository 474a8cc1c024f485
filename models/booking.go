package models

import "time"

// WizardState is the booking wizard's current step.
type WizardState string

const (
	StateDetails    WizardState = "details"
	StateSlot       WizardState = "slot"
	StateProcessing WizardState = "processing"
	StateConfirmed  WizardState = "confirmed"
)

// BookingDraft is the in-progress, unpersisted form data for one
// appointment attempt. SelectedDate uses YYYY-MM-DD; SelectedTime is a
// slot label such as "10:30 AM".
type BookingDraft struct {
	DoctorID     string `json:"doctorId"`
	ServiceID    string `json:"serviceId"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Notes        string `json:"notes"`
	SelectedDate string `json:"selectedDate"`
	SelectedTime string `json:"selectedTime"`
}

// CalendarCursor is the month currently displayed by the wizard's
// calendar. It is independent of the draft and survives step changes.
type CalendarCursor struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Prev moves the cursor one month back.
func (c CalendarCursor) Prev() CalendarCursor {
	t := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return CalendarCursor{Year: t.Year(), Month: t.Month()}
}

// Next moves the cursor one month forward.
func (c CalendarCursor) Next() CalendarCursor {
	t := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return CalendarCursor{Year: t.Year(), Month: t.Month()}
}

// BookingSession holds wizard context between requests. It lives in the
// session cache with a TTL and is never durably persisted.
type BookingSession struct {
	SessionID     string         `json:"sessionId"`
	State         WizardState    `json:"state"`
	Draft         BookingDraft   `json:"draft"`
	Cursor        CalendarCursor `json:"cursor"`
	AutomationLog []string       `json:"automationLog"`
	Confirmation  string         `json:"confirmation,omitempty"`
}

// AppointmentPayload is the JSON body of the outbound clinic-management
// webhook call.
type AppointmentPayload struct {
	DoctorID        string `json:"doctorId"`
	ServiceID       string `json:"serviceId"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Notes           string `json:"notes"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}
