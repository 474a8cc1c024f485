package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"galaxydental/services/booking"
	"galaxydental/store"
	"galaxydental/utils"
)

// BookingHandler exposes the booking wizard over HTTP. All endpoints
// are keyed by the session id handed out at start.
type BookingHandler struct {
	Svc    booking.Service
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// StartSessionHandler creates a session. An optional ?doctor= query
// pre-selects the specialist, mirroring the site's deep link.
func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	session, err := h.Svc.Start(c.Request.Context(), c.Query("doctor"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *BookingHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Svc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) UpdateDetailsHandler(c *gin.Context) {
	var update booking.DetailsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	session, err := h.Svc.UpdateDetails(c.Request.Context(), c.Param("sessionID"), update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) SubmitDetailsHandler(c *gin.Context) {
	session, err := h.Svc.SubmitDetails(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) BackHandler(c *gin.Context) {
	session, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) MoveCalendarHandler(c *gin.Context) {
	var input struct {
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "direction must be 'prev' or 'next'")
		return
	}
	session, err := h.Svc.MoveCalendar(c.Request.Context(), c.Param("sessionID"), input.Direction)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) SelectSlotHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	session, err := h.Svc.SelectSlot(c.Request.Context(), c.Param("sessionID"), input.Date, input.Time)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	session, err := h.Svc.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, session)
}

func (h *BookingHandler) BookAnotherHandler(c *gin.Context) {
	session, err := h.Svc.BookAnother(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// respondError maps wizard errors onto HTTP statuses.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking session not found",
			"The session does not exist or has expired. Start a new booking.")
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Please fill in the required fields.",
			"missing": vErr.Missing,
		})
	case errors.Is(err, booking.ErrRunInProgress):
		utils.JSONError(c, http.StatusConflict, "Booking already in progress", err.Error())
	case errors.Is(err, booking.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "Invalid booking step", err.Error())
	case errors.Is(err, booking.ErrDateNotBookable), errors.Is(err, booking.ErrInvalidSlot):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("booking handler failure",
			zap.String("path", strings.TrimSuffix(c.FullPath(), "/")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "Please try again later.")
	}
}
