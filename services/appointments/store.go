// Package appointments keeps each patient's list of confirmed appointments.
package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	kvRepo "medigen/database/repository/kv"
	"medigen/models"
	"medigen/services/booking"
	"medigen/utils"

	"go.uber.org/zap"
)

type Ordering string

const (
	// OrderByLabel sorts by the slot label as a plain string, so "02:00 PM"
	// comes before "09:00 AM" regardless of date.
	OrderByLabel Ordering = "label"
	// OrderChronological sorts by date, then time of day.
	OrderChronological Ordering = "chronological"
)

// ParseOrdering maps a config value to an Ordering, defaulting to label order.
func ParseOrdering(s string) Ordering {
	if Ordering(s) == OrderChronological {
		return OrderChronological
	}
	return OrderByLabel
}

var ErrInvalidConfirmation = errors.New("appointment requires a confirmed booking")

// PersistenceError reports a failed read or write of the durable list. The
// in-memory list is still correct when it is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("appointments %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store is one patient's appointment list. Every mutation writes the whole
// list before returning.
type Store struct {
	mu       sync.Mutex
	kv       kvRepo.Store
	key      string
	ordering Ordering
	now      func() time.Time

	loaded bool
	items  []models.Appointment
}

func NewStore(kv kvRepo.Store, key string, ordering Ordering) *Store {
	return &Store{kv: kv, key: key, ordering: ordering, now: time.Now}
}

// LoadAll returns the appointments in order. Missing or corrupt storage reads
// as an empty list. If the medium is unreachable only entries added since are
// returned, and the next call tries again.
func (s *Store) LoadAll(ctx context.Context) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.ensureLoaded(ctx)
	return s.snapshot()
}

// Add turns a confirmation into an appointment and persists the list.
func (s *Store) Add(ctx context.Context, conf booking.Confirmation) (models.Appointment, error) {
	if !conf.Valid() {
		return models.Appointment{}, ErrInvalidConfirmation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	readErr := s.ensureLoaded(ctx)

	appt := models.Appointment{
		ID:     s.nextID(),
		Doctor: conf.Doctor(),
		Time:   conf.Time(),
		Date:   conf.Date().Format(booking.DateLayout),
	}
	s.items = append(s.items, appt)
	s.sort()

	if readErr != nil {
		// Writing now would replace the stored list with this entry alone.
		// It stays pending in memory and is merged on the next good read.
		return appt, s.unsaved(readErr)
	}
	return appt, s.persist(ctx)
}

// Remove deletes the appointment with id. An unknown id is not an error.
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	readErr := s.ensureLoaded(ctx)

	idx := -1
	for i, a := range s.items {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}
	if readErr != nil {
		return idx >= 0, s.unsaved(readErr)
	}
	return idx >= 0, s.persist(ctx)
}

func (s *Store) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	var items []models.Appointment
	_, err := kvRepo.LoadJSON(ctx, s.kv, s.key, &items)
	switch {
	case errors.Is(err, kvRepo.ErrMalformed):
		utils.GetLogger().Warn("discarding corrupt appointment list", zap.String("key", s.key), zap.Error(err))
		utils.PersistenceFailures.WithLabelValues("read").Inc()
		items = nil
	case err != nil:
		utils.GetLogger().Error("failed to load appointments", zap.String("key", s.key), zap.Error(err))
		utils.PersistenceFailures.WithLabelValues("read").Inc()
		return &PersistenceError{Op: "read", Err: err}
	}
	// Entries added while storage was unreadable are kept and written back.
	pending := s.items
	s.items = items
	merged := false
	for _, p := range pending {
		if !s.has(p.ID) {
			s.items = append(s.items, p)
			merged = true
		}
	}
	s.sort()
	s.loaded = true
	if merged {
		_ = s.persist(ctx)
	}
	return nil
}

func (s *Store) has(id int64) bool {
	for _, a := range s.items {
		if a.ID == id {
			return true
		}
	}
	return false
}

// unsaved reports a mutation that was not written because the list could
// not be read first.
func (s *Store) unsaved(readErr error) error {
	utils.PersistenceFailures.WithLabelValues("write").Inc()
	return &PersistenceError{Op: "write", Err: readErr}
}

func (s *Store) persist(ctx context.Context) error {
	if err := kvRepo.SaveJSON(ctx, s.kv, s.key, s.snapshot()); err != nil {
		utils.GetLogger().Error("failed to persist appointments", zap.String("key", s.key), zap.Error(err))
		utils.PersistenceFailures.WithLabelValues("write").Inc()
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}

// nextID is the creation time in milliseconds, bumped past the largest id
// already held.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	for _, a := range s.items {
		if a.ID >= id {
			id = a.ID + 1
		}
	}
	return id
}

func (s *Store) sort() {
	if s.ordering == OrderChronological {
		sort.SliceStable(s.items, func(i, j int) bool {
			return chronoKey(s.items[i]) < chronoKey(s.items[j])
		})
		return
	}
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].Time < s.items[j].Time
	})
}

// chronoKey is "2006-01-02 15:04". Undated entries sort first; unparseable
// labels keep their raw text.
func chronoKey(a models.Appointment) string {
	clock := a.Time
	if t, err := time.Parse("03:04 PM", a.Time); err == nil {
		clock = t.Format("15:04")
	}
	return a.Date + " " + clock
}

func (s *Store) snapshot() []models.Appointment {
	out := make([]models.Appointment, len(s.items))
	copy(out, s.items)
	return out
}
