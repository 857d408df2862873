package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"medigen/models"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// CandidateDays is how many consecutive days, starting today, a session offers.
const CandidateDays = 7

type Status string

const (
	StatusSelecting Status = "Selecting"
	StatusConfirmed Status = "Confirmed"
)

// Session is the state of one booking attempt for one doctor: pick a date,
// then a time, then confirm. Picking a new date always clears the time.
// A Session is not safe for concurrent use; it belongs to the interaction
// that created it.
type Session struct {
	id             string
	ownerID        string
	doctor         models.Doctor
	candidateDates []string
	selectedDate   string
	selectedTime   string
	status         Status
	discarded      bool
	createdAt      time.Time
}

// NewSession opens a session for doctor. The candidate dates are the seven
// calendar days starting with now's date, in now's location.
func NewSession(id, ownerID string, doctor models.Doctor, now time.Time) *Session {
	y, m, d := now.Date()
	dates := make([]string, 0, CandidateDays)
	for i := 0; i < CandidateDays; i++ {
		dates = append(dates, time.Date(y, m, d+i, 0, 0, 0, 0, now.Location()).Format(DateLayout))
	}
	return &Session{
		id:             id,
		ownerID:        ownerID,
		doctor:         doctor,
		candidateDates: dates,
		status:         StatusSelecting,
		createdAt:      now,
	}
}

func (s *Session) ID() string            { return s.id }
func (s *Session) OwnerID() string       { return s.ownerID }
func (s *Session) Doctor() models.Doctor { return s.doctor }
func (s *Session) Status() Status        { return s.status }
func (s *Session) CreatedAt() time.Time  { return s.createdAt }
func (s *Session) SelectedTime() string  { return s.selectedTime }

// SelectedDate returns the chosen date, if any.
func (s *Session) SelectedDate() (time.Time, bool) {
	if s.selectedDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s.selectedDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CandidateDates returns the offered dates in ascending order.
func (s *Session) CandidateDates() []time.Time {
	out := make([]time.Time, 0, len(s.candidateDates))
	for _, d := range s.candidateDates {
		if t, err := time.Parse(DateLayout, d); err == nil {
			out = append(out, t)
		}
	}
	return out
}

// AvailableSlots returns the slots for the selected date, or nil before a
// date is chosen.
func (s *Session) AvailableSlots() []string {
	date, ok := s.SelectedDate()
	if !ok {
		return nil
	}
	return SlotsFor(date)
}

func (s *Session) open() error {
	if s.discarded || s.status != StatusSelecting {
		return ErrSessionClosed
	}
	return nil
}

// SelectDate chooses one of the candidate dates and clears any chosen time.
func (s *Session) SelectDate(date time.Time) error {
	if err := s.open(); err != nil {
		return err
	}
	key := date.Format(DateLayout)
	if !s.offersDate(key) {
		return invalidSelection("date %s is not offered", key)
	}
	s.selectedDate = key
	s.selectedTime = ""
	return nil
}

// SelectTime chooses a slot offered on the selected date.
func (s *Session) SelectTime(slot string) error {
	if err := s.open(); err != nil {
		return err
	}
	date, ok := s.SelectedDate()
	if !ok {
		return invalidSelection("select a date before choosing a time")
	}
	if !slotOffered(date, slot) {
		return invalidSelection("time %q is not offered on %s", slot, s.selectedDate)
	}
	s.selectedTime = slot
	return nil
}

// Confirm finalizes the selection. With a missing date or time it returns
// ErrIncompleteSelection and leaves the session untouched.
func (s *Session) Confirm() (Confirmation, error) {
	if err := s.open(); err != nil {
		return Confirmation{}, err
	}
	date, ok := s.SelectedDate()
	if !ok || s.selectedTime == "" {
		return Confirmation{}, ErrIncompleteSelection
	}
	s.status = StatusConfirmed
	return Confirmation{
		doctor:    s.doctor,
		date:      date,
		time:      s.selectedTime,
		confirmed: true,
	}, nil
}

// Cancel discards the session. It is valid in any state.
func (s *Session) Cancel() {
	s.discarded = true
	s.selectedDate = ""
	s.selectedTime = ""
}

func (s *Session) offersDate(key string) bool {
	for _, d := range s.candidateDates {
		if d == key {
			return true
		}
	}
	return false
}

// Confirmation is the immutable {doctor, date, time} record of a confirmed
// session. The zero value is not a confirmation.
type Confirmation struct {
	doctor    models.Doctor
	date      time.Time
	time      string
	confirmed bool
}

func (c Confirmation) Doctor() models.Doctor { return c.doctor }
func (c Confirmation) Date() time.Time       { return c.date }
func (c Confirmation) Time() string          { return c.time }

// Valid reports whether c came out of Session.Confirm.
func (c Confirmation) Valid() bool { return c.confirmed }

// Message renders the confirmation sentence shown to the patient.
func (c Confirmation) Message() string {
	return fmt.Sprintf("Your appointment with %s is scheduled for %s at %s.",
		c.doctor.Name, c.date.Format("Monday, January 2, 2006"), c.time)
}

type sessionRecord struct {
	ID             string        `json:"id"`
	OwnerID        string        `json:"ownerId"`
	Doctor         models.Doctor `json:"doctor"`
	CandidateDates []string      `json:"candidateDates"`
	SelectedDate   string        `json:"selectedDate,omitempty"`
	SelectedTime   string        `json:"selectedTime,omitempty"`
	Status         Status        `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
}

func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(sessionRecord{
		ID:             s.id,
		OwnerID:        s.ownerID,
		Doctor:         s.doctor,
		CandidateDates: s.candidateDates,
		SelectedDate:   s.selectedDate,
		SelectedTime:   s.selectedTime,
		Status:         s.status,
		CreatedAt:      s.createdAt,
	})
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if len(rec.CandidateDates) != CandidateDays {
		return fmt.Errorf("session %s: want %d candidate dates, got %d", rec.ID, CandidateDays, len(rec.CandidateDates))
	}
	if rec.Status != StatusSelecting && rec.Status != StatusConfirmed {
		return fmt.Errorf("session %s: unknown status %q", rec.ID, rec.Status)
	}
	if err := validateRecord(rec); err != nil {
		return fmt.Errorf("session %s: %w", rec.ID, err)
	}
	*s = Session{
		id:             rec.ID,
		ownerID:        rec.OwnerID,
		doctor:         rec.Doctor,
		candidateDates: rec.CandidateDates,
		selectedDate:   rec.SelectedDate,
		selectedTime:   rec.SelectedTime,
		status:         rec.Status,
		createdAt:      rec.CreatedAt,
	}
	return nil
}

// validateRecord checks that the candidate dates are well formed and strictly
// increasing and that any selection is one the session could have made.
func validateRecord(rec sessionRecord) error {
	var prev time.Time
	for i, d := range rec.CandidateDates {
		t, err := time.Parse(DateLayout, d)
		if err != nil {
			return fmt.Errorf("bad candidate date %q", d)
		}
		if i > 0 && !t.After(prev) {
			return fmt.Errorf("candidate dates out of order at %q", d)
		}
		prev = t
	}

	if rec.SelectedDate == "" {
		if rec.SelectedTime != "" {
			return fmt.Errorf("time %q selected without a date", rec.SelectedTime)
		}
		if rec.Status == StatusConfirmed {
			return fmt.Errorf("confirmed without a selection")
		}
		return nil
	}
	date, err := time.Parse(DateLayout, rec.SelectedDate)
	if err != nil {
		return fmt.Errorf("bad selected date %q", rec.SelectedDate)
	}
	offered := false
	for _, d := range rec.CandidateDates {
		offered = offered || d == rec.SelectedDate
	}
	if !offered {
		return fmt.Errorf("selected date %s is not a candidate", rec.SelectedDate)
	}
	if rec.SelectedTime != "" && !slotOffered(date, rec.SelectedTime) {
		return fmt.Errorf("time %q is not offered on %s", rec.SelectedTime, rec.SelectedDate)
	}
	if rec.Status == StatusConfirmed && rec.SelectedTime == "" {
		return fmt.Errorf("confirmed without a time")
	}
	return nil
}
