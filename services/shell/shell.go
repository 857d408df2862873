// Package shell holds the application-level glue: the navigation gate and
// the hand-off from a confirmed booking session to the appointment list.
package shell

import (
	"context"
	"errors"

	"medigen/models"
	"medigen/services/appointments"
	"medigen/services/booking"
	"medigen/utils"

	"go.uber.org/zap"
)

// pages that need a signed-in identity
var protected = map[models.Page]bool{
	models.PageAppointments: true,
	models.PageProfile:      true,
}

// Navigate resolves where a request for target actually lands.
func Navigate(target string, id *models.Identity) models.AppState {
	page, ok := models.ParsePage(target)
	if !ok {
		page = models.PageHome
	}
	switch {
	case protected[page] && id == nil:
		page = models.PageLogin
	case page == models.PageLogin && id != nil:
		page = models.PageHome
	}
	return models.AppState{
		CurrentPage: page,
		Identity:    id,
		ShowAiFab:   page != models.PageAiAssistant,
	}
}

// SignedOut is the state after logout.
func SignedOut() models.AppState {
	return Navigate(string(models.PageHome), nil)
}

// Shell routes booking completions into the patient's appointment list.
type Shell struct {
	bookings booking.BookingSessionService
	lists    *appointments.Registry
}

func New(bookings booking.BookingSessionService, lists *appointments.Registry) *Shell {
	return &Shell{bookings: bookings, lists: lists}
}

// CompleteBooking confirms the session, adds the appointment and discards the
// session. A PersistenceError still comes back with the appointment, which is
// kept in memory.
func (s *Shell) CompleteBooking(ctx context.Context, id models.Identity, sessionID string) (models.Appointment, booking.Confirmation, error) {
	conf, err := s.bookings.ConfirmBooking(ctx, id.UID, sessionID)
	if err != nil {
		return models.Appointment{}, booking.Confirmation{}, err
	}

	appt, addErr := s.lists.For(id.UID).Add(ctx, conf)
	var perr *appointments.PersistenceError
	if addErr != nil && !errors.As(addErr, &perr) {
		return models.Appointment{}, booking.Confirmation{}, addErr
	}
	utils.BookingsConfirmed.Inc()

	if err := s.bookings.CancelSession(ctx, id.UID, sessionID); err != nil {
		utils.GetLogger().Warn("failed to discard booking session", zap.String("sessionID", sessionID), zap.Error(err))
	}
	return appt, conf, addErr
}

func (s *Shell) Appointments(ctx context.Context, id models.Identity) []models.Appointment {
	return s.lists.For(id.UID).LoadAll(ctx)
}

// CancelAppointment removes an appointment from the patient's list.
func (s *Shell) CancelAppointment(ctx context.Context, id models.Identity, appointmentID int64) (bool, error) {
	removed, err := s.lists.For(id.UID).Remove(ctx, appointmentID)
	if removed {
		utils.AppointmentsCancelled.Inc()
	}
	return removed, err
}

// SignOut drops the cached list so the next sign-in reloads it.
func (s *Shell) SignOut(id models.Identity) models.AppState {
	s.lists.Forget(id.UID)
	return SignedOut()
}
