package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"galaxydental/models"
	"galaxydental/services"
	"galaxydental/store"
)

// DetailsUpdate carries a partial draft mutation; nil fields are left
// untouched.
type DetailsUpdate struct {
	DoctorID  *string `json:"doctorId"`
	ServiceID *string `json:"serviceId"`
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Notes     *string `json:"notes"`
}

// Service drives the booking wizard: a linear Details → Slot →
// Processing → Confirmed flow held in a cached session.
type Service interface {
	Start(ctx context.Context, doctorID string) (*models.BookingSession, error)
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	UpdateDetails(ctx context.Context, sessionID string, update DetailsUpdate) (*models.BookingSession, error)
	SubmitDetails(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	MoveCalendar(ctx context.Context, sessionID, direction string) (*models.BookingSession, error)
	SelectSlot(ctx context.Context, sessionID, date, timeLabel string) (*models.BookingSession, error)
	Submit(ctx context.Context, sessionID string) (*models.BookingSession, error)
	BookAnother(ctx context.Context, sessionID string) (*models.BookingSession, error)
}

// DefaultBookingService is the concrete wizard implementation.
type DefaultBookingService struct {
	Sessions     store.SessionRepo
	Availability services.AvailabilityService
	Automation   *AutomationRunner
	Logger       *zap.Logger

	// Now is the wall clock; overridable in tests.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Start creates a fresh session in the Details step. An optional doctor
// id pre-seeds the draft (the "?doctor=" deep link from doctor pages).
func (s *DefaultBookingService) Start(ctx context.Context, doctorID string) (*models.BookingSession, error) {
	now := s.now()
	session := &models.BookingSession{
		SessionID:     uuid.New().String(),
		State:         models.StateDetails,
		Draft:         models.BookingDraft{DoctorID: doctorID},
		Cursor:        models.CalendarCursor{Year: now.Year(), Month: now.Month()},
		AutomationLog: []string{},
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("booking session started",
		zap.String("sessionId", session.SessionID),
		zap.String("doctorId", doctorID))
	return session, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// UpdateDetails mutates draft fields while in the Details step. Picking
// a different doctor invalidates any selected date and time, since the
// two are coupled through the doctor's schedule.
func (s *DefaultBookingService) UpdateDetails(ctx context.Context, sessionID string, update DetailsUpdate) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateDetails {
		return nil, ErrInvalidTransition
	}

	draft := &session.Draft
	if update.DoctorID != nil && *update.DoctorID != draft.DoctorID {
		draft.DoctorID = *update.DoctorID
		draft.SelectedDate = ""
		draft.SelectedTime = ""
	}
	if update.ServiceID != nil {
		draft.ServiceID = *update.ServiceID
	}
	if update.Name != nil {
		draft.Name = *update.Name
	}
	if update.Phone != nil {
		draft.Phone = *update.Phone
	}
	if update.Email != nil {
		draft.Email = *update.Email
	}
	if update.Notes != nil {
		draft.Notes = *update.Notes
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitDetails advances Details → Slot once every required field is
// filled in. On failure the session is left exactly as it was.
func (s *DefaultBookingService) SubmitDetails(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateDetails {
		return nil, ErrInvalidTransition
	}

	if missing := missingDetailFields(session.Draft); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	session.State = models.StateSlot
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func missingDetailFields(draft models.BookingDraft) []string {
	var missing []string
	if draft.DoctorID == "" {
		missing = append(missing, "doctorId")
	}
	if draft.ServiceID == "" {
		missing = append(missing, "serviceId")
	}
	if draft.Name == "" {
		missing = append(missing, "name")
	}
	if draft.Phone == "" {
		missing = append(missing, "phone")
	}
	if draft.Email == "" {
		missing = append(missing, "email")
	}
	return missing
}

// Back returns Slot → Details. No other backward transition exists.
func (s *DefaultBookingService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateSlot {
		return nil, ErrInvalidTransition
	}
	session.State = models.StateDetails
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// MoveCalendar shifts the displayed month. The cursor is view state
// only; it survives step transitions and is never implicitly reset.
func (s *DefaultBookingService) MoveCalendar(ctx context.Context, sessionID, direction string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.StateProcessing {
		return nil, ErrRunInProgress
	}

	switch direction {
	case "prev":
		session.Cursor = session.Cursor.Prev()
	case "next":
		session.Cursor = session.Cursor.Next()
	default:
		return nil, ErrInvalidTransition
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectSlot records the chosen date (and optionally time) while in the
// Slot step. The date must be bookable under the doctor's schedule, and
// the time must be one of the slots generated for that date right now.
// Picking a new date discards a previously chosen time.
func (s *DefaultBookingService) SelectSlot(ctx context.Context, sessionID, date, timeLabel string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateSlot {
		return nil, ErrInvalidTransition
	}

	now := s.now()
	schedule := s.Availability.ScheduleFor(session.Draft.DoctorID)

	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return nil, ErrDateNotBookable
	}
	if !s.Availability.IsBookable(schedule, day, now) {
		return nil, ErrDateNotBookable
	}

	if date != session.Draft.SelectedDate {
		session.Draft.SelectedDate = date
		session.Draft.SelectedTime = ""
	}

	if timeLabel != "" {
		if !containsSlot(s.Availability.Slots(schedule, day, now), timeLabel) {
			return nil, ErrInvalidSlot
		}
		session.Draft.SelectedTime = timeLabel
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func containsSlot(slots []string, label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}

// Submit advances Slot → Processing and kicks off the automation
// sequence in the background. Once started there is no cancellation
// path; resubmission while Processing is rejected.
func (s *DefaultBookingService) Submit(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.StateProcessing {
		return nil, ErrRunInProgress
	}
	if session.State != models.StateSlot {
		return nil, ErrInvalidTransition
	}

	var missing []string
	if session.Draft.SelectedDate == "" {
		missing = append(missing, "selectedDate")
	}
	if session.Draft.SelectedTime == "" {
		missing = append(missing, "selectedTime")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	session.State = models.StateProcessing
	session.AutomationLog = []string{}
	session.Confirmation = ""
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	// The runner works on its own copy; the caller is free to marshal
	// the returned snapshot.
	run := *session
	run.AutomationLog = []string{}
	go s.Automation.Run(context.Background(), &run)

	s.Logger.Info("booking submitted, automation started",
		zap.String("sessionId", session.SessionID),
		zap.String("date", session.Draft.SelectedDate),
		zap.String("time", session.Draft.SelectedTime))
	return session, nil
}

// BookAnother returns Confirmed → Details for a follow-up booking. The
// chosen doctor and service are kept; date, time, notes, the automation
// log, and the confirmation code are cleared.
func (s *DefaultBookingService) BookAnother(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateConfirmed {
		return nil, ErrInvalidTransition
	}

	session.State = models.StateDetails
	session.Draft.SelectedDate = ""
	session.Draft.SelectedTime = ""
	session.Draft.Notes = ""
	session.AutomationLog = []string{}
	session.Confirmation = ""

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
