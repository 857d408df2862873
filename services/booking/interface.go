package booking

import (
	"context"
	"time"

	sessionRepo "medigen/database/repository/session"
	"medigen/models"
)

// DoctorCatalog resolves the doctor a session is opened for.
type DoctorCatalog interface {
	Doctor(id int) (models.Doctor, bool)
}

// BookingSessionService drives booking sessions on behalf of their owner.
// Sessions of other owners are reported as ErrSessionNotFound.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, ownerID string, doctorID int) (*Session, error)
	GetSession(ctx context.Context, ownerID, sessionID string) (*Session, error)
	SelectDate(ctx context.Context, ownerID, sessionID, date string) (*Session, error)
	SelectTime(ctx context.Context, ownerID, sessionID, slot string) (*Session, error)
	ConfirmBooking(ctx context.Context, ownerID, sessionID string) (Confirmation, error)
	CancelSession(ctx context.Context, ownerID, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Catalog DoctorCatalog
	Repo    sessionRepo.Repository
	TTL     time.Duration
	Now     func() time.Time
}
