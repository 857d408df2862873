package booking

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"medigen/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var drA = models.Doctor{ID: 7, Name: "Dr. A", Specialty: "Cardiology", Location: "Nairobi", Rating: 4.8}

// 2024-01-03 is a Wednesday.
var wednesday = time.Date(2024, 1, 3, 14, 20, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2024, 1, 3+offset, 0, 0, 0, 0, time.UTC)
}

func TestNewSession_CandidateDates(t *testing.T) {
	s := NewSession("s1", "u1", drA, wednesday)

	dates := s.CandidateDates()
	require.Len(t, dates, CandidateDays)
	assert.Equal(t, "2024-01-03", dates[0].Format(DateLayout))
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].After(dates[i-1]))
		assert.Equal(t, 24*time.Hour, dates[i].Sub(dates[i-1]))
	}
	assert.Equal(t, StatusSelecting, s.Status())
	assert.Nil(t, s.AvailableSlots())
}

func TestNewSession_CandidateDatesCrossMonth(t *testing.T) {
	s := NewSession("s1", "u1", drA, time.Date(2024, 2, 27, 9, 0, 0, 0, time.UTC))

	var got []string
	for _, d := range s.CandidateDates() {
		got = append(got, d.Format(DateLayout))
	}
	assert.Equal(t, []string{
		"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01",
		"2024-03-02", "2024-03-03", "2024-03-04",
	}, got)
}

func TestSession_EveryDateAndSlotConfirms(t *testing.T) {
	for i := 0; i < CandidateDays; i++ {
		for _, slot := range SlotsFor(day(i)) {
			s := NewSession("s", "u1", drA, wednesday)
			require.NoError(t, s.SelectDate(day(i)))
			require.NoError(t, s.SelectTime(slot))
			assert.Equal(t, StatusSelecting, s.Status())

			conf, err := s.Confirm()
			require.NoError(t, err)
			assert.Equal(t, StatusConfirmed, s.Status())
			assert.True(t, conf.Valid())
			assert.Equal(t, drA, conf.Doctor())
			assert.Equal(t, day(i), conf.Date())
			assert.Equal(t, slot, conf.Time())
		}
	}
}

func TestSession_ChangingDateClearsTime(t *testing.T) {
	s := NewSession("s1", "u1", drA, wednesday)
	require.NoError(t, s.SelectDate(day(0)))
	require.NoError(t, s.SelectTime("10:00 AM"))

	require.NoError(t, s.SelectDate(day(1)))
	assert.Empty(t, s.SelectedTime())
	assert.Equal(t, SlotsFor(day(1)), s.AvailableSlots())

	// Reselecting the same date also clears the time.
	require.NoError(t, s.SelectTime("01:00 PM"))
	require.NoError(t, s.SelectDate(day(1)))
	assert.Empty(t, s.SelectedTime())
}

func TestSession_SelectDateOutsideCandidates(t *testing.T) {
	s := NewSession("s1", "u1", drA, wednesday)

	err := s.SelectDate(day(7))
	assert.ErrorIs(t, err, ErrInvalidSelection)
	err = s.SelectDate(day(-1))
	assert.ErrorIs(t, err, ErrInvalidSelection)

	_, ok := s.SelectedDate()
	assert.False(t, ok)
}

func TestSession_SelectTimeRules(t *testing.T) {
	s := NewSession("s1", "u1", drA, wednesday)

	assert.ErrorIs(t, s.SelectTime("10:00 AM"), ErrInvalidSelection, "no date yet")

	require.NoError(t, s.SelectDate(day(0)))
	assert.ErrorIs(t, s.SelectTime("01:00 PM"), ErrInvalidSelection, "Thursday slot on Wednesday")
	assert.Empty(t, s.SelectedTime())
}

func TestSession_ConfirmIncomplete(t *testing.T) {
	s := NewSession("s1", "u1", drA, wednesday)

	_, err := s.Confirm()
	assert.ErrorIs(t, err, ErrIncompleteSelection)
	assert.Equal(t, StatusSelecting, s.Status())

	require.NoError(t, s.SelectDate(day(0)))
	_, err = s.Confirm()
	assert.ErrorIs(t, err, ErrIncompleteSelection)
	assert.Equal(t, StatusSelecting, s.Status())

	var be *BookingError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "Please select a date and a time slot.", be.Message)
}

func TestSession_ClosedAfterConfirm(t *testing.T) {
	s := NewSession("s1", "u1", drA, wednesday)
	require.NoError(t, s.SelectDate(day(0)))
	require.NoError(t, s.SelectTime("10:00 AM"))
	_, err := s.Confirm()
	require.NoError(t, err)

	assert.ErrorIs(t, s.SelectDate(day(1)), ErrSessionClosed)
	assert.ErrorIs(t, s.SelectTime("09:00 AM"), ErrSessionClosed)
	_, err = s.Confirm()
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSession_CancelAnyState(t *testing.T) {
	s := NewSession("s1", "u1", drA, wednesday)
	require.NoError(t, s.SelectDate(day(0)))
	s.Cancel()
	assert.ErrorIs(t, s.SelectDate(day(0)), ErrSessionClosed)
	s.Cancel()

	confirmed := NewSession("s2", "u1", drA, wednesday)
	require.NoError(t, confirmed.SelectDate(day(0)))
	require.NoError(t, confirmed.SelectTime("09:00 AM"))
	_, err := confirmed.Confirm()
	require.NoError(t, err)
	confirmed.Cancel()
}

func TestConfirmation_ZeroValueIsInvalid(t *testing.T) {
	assert.False(t, Confirmation{}.Valid())
}

func TestConfirmation_Message(t *testing.T) {
	s := NewSession("s1", "u1", drA, wednesday)
	require.NoError(t, s.SelectDate(day(0)))
	require.NoError(t, s.SelectTime("10:00 AM"))
	conf, err := s.Confirm()
	require.NoError(t, err)

	assert.Equal(t, "Your appointment with Dr. A is scheduled for Wednesday, January 3, 2024 at 10:00 AM.", conf.Message())
}

func TestSession_JSONRoundTrip(t *testing.T) {
	s := NewSession("s1", "u1", drA, wednesday)
	require.NoError(t, s.SelectDate(day(2)))
	require.NoError(t, s.SelectTime("09:30 AM"))

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var restored Session
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, "s1", restored.ID())
	assert.Equal(t, "u1", restored.OwnerID())
	assert.Equal(t, drA, restored.Doctor())
	assert.Equal(t, s.CandidateDates(), restored.CandidateDates())
	assert.Equal(t, "09:30 AM", restored.SelectedTime())
	assert.Equal(t, StatusSelecting, restored.Status())
}

func TestSession_UnmarshalRejectsBrokenRecords(t *testing.T) {
	var s Session
	assert.Error(t, json.Unmarshal([]byte(`{"id":"x","candidateDates":["2024-01-03"],"status":"Selecting"}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"id":"x","candidateDates":["a","b","c","d","e","f","g"],"status":"Done"}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`not json`), &s))
}

func TestSession_UnmarshalChecksSelection(t *testing.T) {
	week := `["2024-01-03","2024-01-04","2024-01-05","2024-01-06","2024-01-07","2024-01-08","2024-01-09"]`
	record := func(dates, date, slot, status string) []byte {
		return []byte(`{"id":"x","ownerId":"u1","candidateDates":` + dates +
			`,"selectedDate":"` + date + `","selectedTime":"` + slot + `","status":"` + status + `"}`)
	}

	cases := []struct {
		name string
		data []byte
		ok   bool
	}{
		{"valid selection", record(week, "2024-01-03", "10:00 AM", "Selecting"), true},
		{"confirmed", record(week, "2024-01-04", "02:00 PM", "Confirmed"), true},
		{"nothing selected", record(week, "", "", "Selecting"), true},
		{"malformed date", record(`["2024-01-03","x","2024-01-05","2024-01-06","2024-01-07","2024-01-08","2024-01-09"]`, "", "", "Selecting"), false},
		{"dates not increasing", record(`["2024-01-03","2024-01-03","2024-01-05","2024-01-06","2024-01-07","2024-01-08","2024-01-09"]`, "", "", "Selecting"), false},
		{"date outside candidates", record(week, "2024-01-10", "", "Selecting"), false},
		{"slot not offered that day", record(week, "2024-01-03", "01:00 PM", "Selecting"), false},
		{"time without date", record(week, "", "10:00 AM", "Selecting"), false},
		{"confirmed without time", record(week, "2024-01-03", "", "Confirmed"), false},
	}
	for _, tc := range cases {
		var s Session
		err := json.Unmarshal(tc.data, &s)
		if tc.ok {
			assert.NoError(t, err, tc.name)
		} else {
			assert.Error(t, err, tc.name)
		}
	}
}
