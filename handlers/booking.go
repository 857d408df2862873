package handlers

import (
	"errors"
	"net/http"

	"medigen/middleware"
	"medigen/models"
	"medigen/services/appointments"
	"medigen/services/booking"
	"medigen/services/shell"
	"medigen/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const noSlotsMessage = "No available time slots for this date."

type BookingHandler struct {
	Bookings booking.BookingSessionService
	Shell    *shell.Shell
}

func NewBookingHandler(bookings booking.BookingSessionService, sh *shell.Shell) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Shell: sh}
}

func sessionResponse(sess *booking.Session) models.BookingSessionResponse {
	dates := sess.CandidateDates()
	options := make([]models.DateOption, len(dates))
	for i, d := range dates {
		options[i] = models.DateOption{Date: d.Format(booking.DateLayout), Label: d.Format("Mon, Jan 2")}
	}

	resp := models.BookingSessionResponse{
		SessionID:      sess.ID(),
		Doctor:         models.NewDoctorCard(sess.Doctor()),
		CandidateDates: options,
		SelectedTime:   sess.SelectedTime(),
		Status:         string(sess.Status()),
		TimeSlots:      []string{},
	}
	if date, ok := sess.SelectedDate(); ok {
		resp.SelectedDate = date.Format(booking.DateLayout)
		if slots := sess.AvailableSlots(); len(slots) > 0 {
			resp.TimeSlots = slots
		} else {
			resp.Message = noSlotsMessage
		}
	}
	return resp
}

// writeBookingError maps booking failures to HTTP responses.
func writeBookingError(c *gin.Context, err error) {
	var be *booking.BookingError
	if !errors.As(err, &be) {
		getLogger(c).Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking service unavailable"})
		return
	}

	status := http.StatusBadRequest
	switch {
	case errors.Is(err, booking.ErrSessionNotFound), errors.Is(err, booking.ErrDoctorNotFound):
		status = http.StatusNotFound
	case errors.Is(err, booking.ErrIncompleteSelection):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, booking.ErrSessionClosed):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": be.Message, "code": be.Code})
}

func (h *BookingHandler) InitiateSession(c *gin.Context) {
	uid, _ := identityUID(c)
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.Bookings.InitiateSession(c.Request.Context(), uid, req.DoctorID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(sess))
}

func (h *BookingHandler) GetSession(c *gin.Context) {
	uid, _ := identityUID(c)
	sess, err := h.Bookings.GetSession(c.Request.Context(), uid, c.Param("sessionID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

func (h *BookingHandler) SelectDate(c *gin.Context) {
	uid, _ := identityUID(c)
	var req models.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.Bookings.SelectDate(c.Request.Context(), uid, c.Param("sessionID"), req.Date)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

func (h *BookingHandler) SelectTime(c *gin.Context) {
	uid, _ := identityUID(c)
	var req models.SelectTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.Bookings.SelectTime(c.Request.Context(), uid, c.Param("sessionID"), req.Time)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// ConfirmBooking commits the session to the appointment list. If the list
// could not be written the appointment is still returned with saved=false.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	if id == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appt, conf, err := h.Shell.CompleteBooking(c.Request.Context(), *id, c.Param("sessionID"))
	saved := true
	var perr *appointments.PersistenceError
	if errors.As(err, &perr) {
		saved = false
	} else if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.BookingConfirmationResponse{
		Appointment:  appt,
		Confirmation: conf.Message(),
		Saved:        saved,
	})
}

func (h *BookingHandler) CancelSession(c *gin.Context) {
	uid, _ := identityUID(c)
	if err := h.Bookings.CancelSession(c.Request.Context(), uid, c.Param("sessionID")); err != nil {
		writeBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
