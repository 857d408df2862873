package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sessionRepo "medigen/database/repository/session"
	"medigen/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultSessionTTL = 15 * time.Minute

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingSessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return defaultSessionTTL
}

// InitiateSession opens a session for the given doctor.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, ownerID string, doctorID int) (*Session, error) {
	doctor, ok := s.Catalog.Doctor(doctorID)
	if !ok {
		return nil, ErrDoctorNotFound
	}
	sess := NewSession(uuid.New().String(), ownerID, doctor, s.now())
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("booking session opened",
		zap.String("sessionID", sess.ID()),
		zap.Int("doctorID", doctor.ID),
	)
	return sess, nil
}

func (s *DefaultBookingSessionService) GetSession(ctx context.Context, ownerID, sessionID string) (*Session, error) {
	return s.load(ctx, ownerID, sessionID)
}

// SelectDate accepts a date in 2006-01-02 form.
func (s *DefaultBookingSessionService) SelectDate(ctx context.Context, ownerID, sessionID, date string) (*Session, error) {
	sess, err := s.load(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	day, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return nil, invalidSelection("date %q is not in %s form", date, DateLayout)
	}
	if err := sess.SelectDate(day); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultBookingSessionService) SelectTime(ctx context.Context, ownerID, sessionID, slot string) (*Session, error) {
	sess, err := s.load(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.SelectTime(slot); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// ConfirmBooking moves the session to Confirmed and returns its confirmation.
// The Selecting to Confirmed step is guarded by a claim in the repository, so
// of several concurrent confirms exactly one succeeds and the rest get
// ErrSessionClosed. The claim outlives the session, so a confirm arriving after
// the session was discarded is also reported as closed.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, ownerID, sessionID string) (Confirmation, error) {
	sess, err := s.load(ctx, ownerID, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		if owner, cerr := s.Repo.ClaimedBy(ctx, sessionID); cerr == nil && owner == ownerID {
			return Confirmation{}, ErrSessionClosed
		}
	}
	if err != nil {
		return Confirmation{}, err
	}
	conf, err := sess.Confirm()
	if err != nil {
		return Confirmation{}, err
	}

	won, err := s.Repo.Claim(ctx, sessionID, ownerID, s.ttl())
	if err != nil {
		return Confirmation{}, err
	}
	if !won {
		return Confirmation{}, ErrSessionClosed
	}
	if err := s.save(ctx, sess); err != nil {
		if rerr := s.Repo.Release(ctx, sessionID); rerr != nil {
			utils.GetLogger().Warn("failed to release booking claim", zap.String("sessionID", sessionID), zap.Error(rerr))
		}
		return Confirmation{}, err
	}
	return conf, nil
}

// CancelSession discards the session. Missing or foreign sessions are a no-op.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, ownerID, sessionID string) error {
	sess, err := s.load(ctx, ownerID, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	sess.Cancel()
	return s.Repo.Delete(ctx, sessionID)
}

func (s *DefaultBookingSessionService) load(ctx context.Context, ownerID, sessionID string) (*Session, error) {
	data, err := s.Repo.Get(ctx, sessionID)
	if errors.Is(err, sessionRepo.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		utils.GetLogger().Warn("dropping unreadable booking session",
			zap.String("sessionID", sessionID), zap.Error(err))
		_ = s.Repo.Delete(ctx, sessionID)
		return nil, ErrSessionNotFound
	}
	if sess.OwnerID() != ownerID {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *DefaultBookingSessionService) save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	return s.Repo.Save(ctx, sess.ID(), data, s.ttl())
}
