package booking

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"galaxydental/models"
	"galaxydental/services/notify"
	"galaxydental/store"
)

// syncMarker identifies the script line at which the webhook fires.
const syncMarker = "Syncing"

// AutomationRunner replays the scripted backend-integration sequence:
// one log line per step with a fixed delay, a single fire-and-forget
// webhook at the sync step, and a final transition to Confirmed. The
// "integrations" the lines describe are decorative; only the webhook
// leaves the process, and its outcome never alters the script.
type AutomationRunner struct {
	Sessions  store.SessionRepo
	Notifier  notify.Notifier
	StepDelay time.Duration
	Logger    *zap.Logger
}

// script builds the run's log lines. The patient-ID line embeds a fresh
// cosmetic identifier each run.
func (r *AutomationRunner) script() []string {
	return []string{
		"Checking Doctor's Availability...",
		"Validating Time Slot...",
		"Slot confirmed.",
		"Generating Patient ID: " + confirmationCode(),
		"Configuring 24h SMS & WhatsApp Reminders...",
		"Scheduling 2h Prior Email Notification...",
		"Enrolling in Birthday Rewards Program (10% Off)...",
		"Preparing Post-Treatment Care Guide...",
		"Setting up Aligner/Checkup Follow-up Sequence...",
		"Syncing with Clinic Management System...",
		"Booking Confirmed!",
	}
}

// confirmationCode returns a cosmetic display identifier with no
// backing store.
func confirmationCode() string {
	return fmt.Sprintf("GALAXY-%d", 1000+rand.Intn(9000))
}

// Run executes the full sequence against the given session snapshot,
// persisting the growing log after each step so clients can poll it.
func (r *AutomationRunner) Run(ctx context.Context, session *models.BookingSession) {
	payload := models.AppointmentPayload{
		DoctorID:        session.Draft.DoctorID,
		ServiceID:       session.Draft.ServiceID,
		Name:            session.Draft.Name,
		Phone:           session.Draft.Phone,
		Email:           session.Draft.Email,
		Notes:           session.Draft.Notes,
		AppointmentDate: session.Draft.SelectedDate,
		AppointmentTime: session.Draft.SelectedTime,
	}

	session.AutomationLog = []string{}
	for _, line := range r.script() {
		time.Sleep(r.StepDelay)
		session.AutomationLog = append(session.AutomationLog, line)
		if err := r.Sessions.Save(ctx, session); err != nil {
			r.Logger.Warn("automation: failed to persist log step",
				zap.String("sessionId", session.SessionID), zap.Error(err))
		}

		// The webhook is detached so a slow or dead endpoint cannot
		// stretch the remaining steps.
		if strings.Contains(line, syncMarker) {
			go r.Notifier.Notify(ctx, payload)
		}
	}

	session.State = models.StateConfirmed
	session.Confirmation = confirmationCode()
	if err := r.Sessions.Save(ctx, session); err != nil {
		r.Logger.Warn("automation: failed to persist confirmation",
			zap.String("sessionId", session.SessionID), zap.Error(err))
		return
	}
	r.Logger.Info("automation run complete",
		zap.String("sessionId", session.SessionID),
		zap.String("confirmation", session.Confirmation))
}
