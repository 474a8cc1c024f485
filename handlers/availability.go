package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"galaxydental/services"
	"galaxydental/utils"
)

// AvailabilityHandler exposes the resolver directly, for front ends that
// render a calendar without opening a booking session.
type AvailabilityHandler struct {
	Availability services.AvailabilityService

	// Now is the wall clock; overridable in tests.
	Now func() time.Time
}

func NewAvailabilityHandler(availability services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: availability, Now: time.Now}
}

// GetCalendarHandler renders one month: /api/availability/calendar?doctor=&year=&month=
func (h *AvailabilityHandler) GetCalendarHandler(c *gin.Context) {
	now := h.Now()
	doctorID := c.Query("doctor")

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid year", err.Error())
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid month", "month must be between 1 and 12")
		return
	}

	schedule := h.Availability.ScheduleFor(doctorID)
	grid := h.Availability.MonthGrid(schedule, year, time.Month(month), now)
	c.JSON(http.StatusOK, gin.H{"schedule": schedule, "calendar": grid})
}

// GetSlotsHandler enumerates a date's slots: /api/availability/slots?doctor=&date=
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	now := h.Now()
	doctorID := c.Query("doctor")

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), now.Location())
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "date must use the YYYY-MM-DD format")
		return
	}

	schedule := h.Availability.ScheduleFor(doctorID)
	if !h.Availability.IsBookable(schedule, date, now) {
		c.JSON(http.StatusOK, gin.H{"bookable": false, "slots": []string{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookable": true, "slots": h.Availability.Slots(schedule, date, now)})
}
