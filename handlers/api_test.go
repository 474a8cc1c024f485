package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"galaxydental/handlers"
	"galaxydental/models"
	"galaxydental/routes"
	"galaxydental/services"
	"galaxydental/services/booking"
	"galaxydental/services/notify"
	"galaxydental/store"
)

var handlerNow = time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)

// newTestRouter wires the full API the way main does, against an
// in-process Redis, a fixed clock, and a webhook double.
func newTestRouter(t *testing.T, webhookURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionRepo := store.NewRedisSessionRepo(client, 30*time.Minute)
	themeRepo := store.NewRedisThemeRepo(client)
	catalog := store.NewMemoryCatalog()

	logger := zap.NewNop()
	availabilityService := &services.DefaultAvailabilityService{}
	bookingService := &booking.DefaultBookingService{
		Sessions:     sessionRepo,
		Availability: availabilityService,
		Automation: &booking.AutomationRunner{
			Sessions:  sessionRepo,
			Notifier:  notify.NewWebhookNotifier(webhookURL, time.Second, logger),
			StepDelay: 0,
			Logger:    logger,
		},
		Logger: logger,
		Now:    func() time.Time { return handlerNow },
	}

	catalogHandler := handlers.NewCatalogHandler(catalog, availabilityService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	availabilityHandler.Now = func() time.Time { return handlerNow }
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	themeHandler := handlers.NewThemeHandler(themeRepo, "light")
	chatHandler := handlers.NewChatHandler(&services.DefaultChatService{})

	hb := &handlers.HandlerBundle{
		ListDoctorsHandler:       catalogHandler.ListDoctorsHandler,
		GetDoctorHandler:         catalogHandler.GetDoctorHandler,
		GetDoctorScheduleHandler: catalogHandler.GetDoctorScheduleHandler,
		ListServicesHandler:      catalogHandler.ListServicesHandler,
		GetServiceHandler:        catalogHandler.GetServiceHandler,
		ListTestimonialsHandler:  catalogHandler.ListTestimonialsHandler,
		ListFAQsHandler:          catalogHandler.ListFAQsHandler,
		ListGalleryHandler:       catalogHandler.ListGalleryHandler,
		GetClinicInfoHandler:     catalogHandler.GetClinicInfoHandler,
		GetPriceListHandler:      catalogHandler.GetPriceListHandler,

		GetCalendarHandler: availabilityHandler.GetCalendarHandler,
		GetSlotsHandler:    availabilityHandler.GetSlotsHandler,

		StartSessionHandler:  bookingHandler.StartSessionHandler,
		GetSessionHandler:    bookingHandler.GetSessionHandler,
		UpdateDetailsHandler: bookingHandler.UpdateDetailsHandler,
		SubmitDetailsHandler: bookingHandler.SubmitDetailsHandler,
		BackHandler:          bookingHandler.BackHandler,
		MoveCalendarHandler:  bookingHandler.MoveCalendarHandler,
		SelectSlotHandler:    bookingHandler.SelectSlotHandler,
		SubmitBookingHandler: bookingHandler.SubmitBookingHandler,
		BookAnotherHandler:   bookingHandler.BookAnotherHandler,

		GetThemeHandler: themeHandler.GetThemeHandler,
		SetThemeHandler: themeHandler.SetThemeHandler,

		ChatHandler: chatHandler.ChatHandler,
	}

	router := gin.New()
	routes.RegisterRoutes(router, hb)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) models.BookingSession {
	t.Helper()
	var session models.BookingSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	return session
}

func TestCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t, "")

	w := doJSON(t, router, http.MethodGet, "/api/doctors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doctorsResp struct {
		Doctors []models.Doctor `json:"doctors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctorsResp))
	assert.Len(t, doctorsResp.Doctors, 3)

	w = doJSON(t, router, http.MethodGet, "/api/doctors/dr-reddy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doctor models.Doctor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctor))
	assert.Equal(t, "Dr. Arjun Reddy", doctor.Name)

	w = doJSON(t, router, http.MethodGet, "/api/doctors/dr-nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "/api/doctors")

	w = doJSON(t, router, http.MethodGet, "/api/doctors/dr-sharma/schedule", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var schedule models.WeeklySchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schedule))
	assert.Equal(t, "Mon-Sat: 10AM - 2PM", schedule.Label)

	w = doJSON(t, router, http.MethodGet, "/api/services/implants", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodGet, "/api/pricing", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "General Consultation")
	w = doJSON(t, router, http.MethodGet, "/api/clinic", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Galaxy Tower")
}

func TestAvailabilityEndpoints(t *testing.T) {
	router := newTestRouter(t, "")

	w := doJSON(t, router, http.MethodGet, "/api/availability/slots?doctor=dr-sharma&date=2026-09-02", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var slotsResp struct {
		Bookable bool     `json:"bookable"`
		Slots    []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slotsResp))
	assert.True(t, slotsResp.Bookable)
	assert.Len(t, slotsResp.Slots, 8)
	assert.Equal(t, "10:00 AM", slotsResp.Slots[0])
	assert.Equal(t, "1:30 PM", slotsResp.Slots[7])

	// Sunday: off-duty, rendered non-selectable.
	w = doJSON(t, router, http.MethodGet, "/api/availability/slots?doctor=dr-sharma&date=2026-09-06", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slotsResp))
	assert.False(t, slotsResp.Bookable)
	assert.Empty(t, slotsResp.Slots)

	w = doJSON(t, router, http.MethodGet, "/api/availability/slots?doctor=dr-sharma&date=junk", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/availability/calendar?doctor=dr-sharma&year=2026&month=9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var calResp struct {
		Calendar models.MonthGrid `json:"calendar"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &calResp))
	assert.Len(t, calResp.Calendar.Days, 30)

	w = doJSON(t, router, http.MethodGet, "/api/availability/calendar?month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingWizard_EndToEnd(t *testing.T) {
	var webhookHits int32
	var received models.AppointmentPayload
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&webhookHits, 1)
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer webhook.Close()

	router := newTestRouter(t, webhook.URL)

	// Start with a pre-selected doctor, as the doctor page deep link does.
	w := doJSON(t, router, http.MethodPost, "/api/booking/session?doctor=dr-sharma", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	session := decodeSession(t, w)
	id := session.SessionID
	require.NotEmpty(t, id)
	assert.Equal(t, models.StateDetails, session.State)
	assert.Equal(t, "dr-sharma", session.Draft.DoctorID)

	// Submitting incomplete details is rejected and changes nothing.
	w = doJSON(t, router, http.MethodPost, "/api/booking/session/"+id+"/details/submit", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var reject struct {
		Missing []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reject))
	assert.ElementsMatch(t, []string{"serviceId", "name", "phone", "email"}, reject.Missing)

	w = doJSON(t, router, http.MethodPut, "/api/booking/session/"+id+"/details", gin.H{
		"serviceId": "aligners",
		"name":      "Rahul Verma",
		"phone":     "+91 9000000000",
		"email":     "rahul@example.com",
		"notes":     "evening preferred",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/booking/session/"+id+"/details/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StateSlot, decodeSession(t, w).State)

	// Submitting without a slot picked is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/booking/session/"+id+"/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Calendar navigation.
	w = doJSON(t, router, http.MethodPut, "/api/booking/session/"+id+"/calendar", gin.H{"direction": "next"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.October, decodeSession(t, w).Cursor.Month)
	w = doJSON(t, router, http.MethodPut, "/api/booking/session/"+id+"/calendar", gin.H{"direction": "prev"})
	require.Equal(t, http.StatusOK, w.Code)

	// A Sunday is rejected for dr-sharma.
	w = doJSON(t, router, http.MethodPut, "/api/booking/session/"+id+"/slot", gin.H{"date": "2026-09-06"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/booking/session/"+id+"/slot", gin.H{"date": "2026-09-02", "time": "10:30 AM"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/booking/session/"+id+"/submit", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, models.StateProcessing, decodeSession(t, w).State)

	// Poll until the automation run confirms the booking.
	var final models.BookingSession
	require.Eventually(t, func() bool {
		w := doJSON(t, router, http.MethodGet, "/api/booking/session/"+id, nil)
		if w.Code != http.StatusOK {
			return false
		}
		final = decodeSession(t, w)
		return final.State == models.StateConfirmed
	}, 2*time.Second, 10*time.Millisecond)

	assert.Len(t, final.AutomationLog, 11)
	assert.Equal(t, "Booking Confirmed!", final.AutomationLog[10])
	assert.Regexp(t, `^GALAXY-\d{4}$`, final.Confirmation)

	require.Eventually(t, func() bool { return atomic.LoadInt32(&webhookHits) == 1 },
		2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "dr-sharma", received.DoctorID)
	assert.Equal(t, "2026-09-02", received.AppointmentDate)
	assert.Equal(t, "10:30 AM", received.AppointmentTime)
	assert.Equal(t, "evening preferred", received.Notes)

	// Book another: back to details, doctor and service retained.
	w = doJSON(t, router, http.MethodPost, "/api/booking/session/"+id+"/again", nil)
	require.Equal(t, http.StatusOK, w.Code)
	again := decodeSession(t, w)
	assert.Equal(t, models.StateDetails, again.State)
	assert.Equal(t, "dr-sharma", again.Draft.DoctorID)
	assert.Equal(t, "aligners", again.Draft.ServiceID)
	assert.Empty(t, again.Draft.SelectedTime)
	assert.Empty(t, again.Draft.Notes)
	assert.Empty(t, again.AutomationLog)
}

func TestBookingSession_NotFound(t *testing.T) {
	router := newTestRouter(t, "")

	w := doJSON(t, router, http.MethodGet, "/api/booking/session/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/booking/session/ghost/submit", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestThemeEndpoints(t *testing.T) {
	router := newTestRouter(t, "")

	w := doJSON(t, router, http.MethodGet, "/api/preferences/theme?client=visitor-9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var themeResp struct {
		Theme  string `json:"theme"`
		Stored bool   `json:"stored"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &themeResp))
	assert.Equal(t, "light", themeResp.Theme)
	assert.False(t, themeResp.Stored)

	w = doJSON(t, router, http.MethodPut, "/api/preferences/theme", gin.H{"client": "visitor-9", "theme": "dark"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/preferences/theme?client=visitor-9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &themeResp))
	assert.Equal(t, "dark", themeResp.Theme)
	assert.True(t, themeResp.Stored)

	w = doJSON(t, router, http.MethodPut, "/api/preferences/theme", gin.H{"client": "visitor-9", "theme": "neon"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/preferences/theme", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	w := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{"message": "can I book online?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Book Appointment")

	w = doJSON(t, router, http.MethodPost, "/api/chat", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
