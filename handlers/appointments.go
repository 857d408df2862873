package handlers

import (
	"net/http"
	"strconv"

	"medigen/middleware"
	"medigen/models"
	"medigen/services/shell"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	Shell *shell.Shell
}

func NewAppointmentHandler(sh *shell.Shell) *AppointmentHandler {
	return &AppointmentHandler{Shell: sh}
}

func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	if id == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, models.AppointmentListResponse{
		Appointments: h.Shell.Appointments(c.Request.Context(), *id),
	})
}

// CancelAppointmentHandler removes an appointment. Unknown ids are not an
// error; the current list is returned either way.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	id := middleware.CurrentIdentity(c)
	if id == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	appointmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	ctx := c.Request.Context()
	removed, err := h.Shell.CancelAppointment(ctx, *id, appointmentID)
	saved := err == nil
	if err != nil {
		logger.Warn("appointment list not saved", zap.Int64("appointmentID", appointmentID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"removed":      removed,
		"saved":        saved,
		"appointments": h.Shell.Appointments(ctx, *id),
	})
}
