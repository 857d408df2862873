package shell

import (
	"context"
	"sync"
	"testing"
	"time"

	kvRepo "medigen/database/repository/kv"
	sessionRepo "medigen/database/repository/session"
	"medigen/models"
	"medigen/services/appointments"
	"medigen/services/booking"
	"medigen/services/catalog"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jane = models.Identity{UID: "u1", Email: "jane@example.com"}

func TestNavigate(t *testing.T) {
	cases := []struct {
		target string
		id     *models.Identity
		want   models.Page
	}{
		{"Home", nil, models.PageHome},
		{"doctors", nil, models.PageDoctors},
		{"Appointments", nil, models.PageLogin},
		{"Profile", nil, models.PageLogin},
		{"Appointments", &jane, models.PageAppointments},
		{"profile", &jane, models.PageProfile},
		{"Login", nil, models.PageLogin},
		{"Login", &jane, models.PageHome},
		{"ai-assistant", nil, models.PageAiAssistant},
		{"nowhere", &jane, models.PageHome},
	}
	for _, tc := range cases {
		got := Navigate(tc.target, tc.id)
		assert.Equal(t, tc.want, got.CurrentPage, tc.target)
	}
}

func TestNavigate_AiFabHiddenOnAssistant(t *testing.T) {
	assert.False(t, Navigate("AI Assistant", nil).ShowAiFab)
	assert.True(t, Navigate("Home", nil).ShowAiFab)
}

func TestSignedOut(t *testing.T) {
	state := SignedOut()
	assert.Equal(t, models.PageHome, state.CurrentPage)
	assert.Nil(t, state.Identity)
}

type fixture struct {
	shell    *Shell
	bookings *booking.DefaultBookingSessionService
	mr       *miniredis.Miniredis
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := &booking.DefaultBookingSessionService{
		Catalog: catalog.NewWithDoctors([]models.Doctor{{ID: 7, Name: "Dr. A", Specialty: "Cardiology"}}),
		Repo:    sessionRepo.NewRedisSessionRepo(client),
		// 2024-01-03 is a Wednesday.
		Now: func() time.Time { return time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC) },
	}
	reg := appointments.NewRegistry(kvRepo.NewRedisStore(client), appointments.OrderByLabel)
	return fixture{shell: New(svc, reg), bookings: svc, mr: mr}
}

func TestCompleteBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.bookings.InitiateSession(ctx, jane.UID, 7)
	require.NoError(t, err)
	_, err = f.bookings.SelectDate(ctx, jane.UID, sess.ID(), "2024-01-03")
	require.NoError(t, err)
	_, err = f.bookings.SelectTime(ctx, jane.UID, sess.ID(), "10:00 AM")
	require.NoError(t, err)

	appt, conf, err := f.shell.CompleteBooking(ctx, jane, sess.ID())
	require.NoError(t, err)
	assert.True(t, conf.Valid())
	assert.Equal(t, 7, appt.Doctor.ID)
	assert.Equal(t, "10:00 AM", appt.Time)

	list := f.shell.Appointments(ctx, jane)
	require.Len(t, list, 1)
	assert.Equal(t, appt, list[0])

	// The session is gone once committed.
	_, err = f.bookings.GetSession(ctx, jane.UID, sess.ID())
	assert.ErrorIs(t, err, booking.ErrSessionNotFound)
}

func TestCompleteBooking_ConcurrentConfirmAddsOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.bookings.InitiateSession(ctx, jane.UID, 7)
	require.NoError(t, err)
	_, err = f.bookings.SelectDate(ctx, jane.UID, sess.ID(), "2024-01-03")
	require.NoError(t, err)
	_, err = f.bookings.SelectTime(ctx, jane.UID, sess.ID(), "10:00 AM")
	require.NoError(t, err)

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = f.shell.CompleteBooking(ctx, jane, sess.ID())
		}(i)
	}
	wg.Wait()

	committed := 0
	for _, err := range errs {
		if err == nil {
			committed++
			continue
		}
		assert.ErrorIs(t, err, booking.ErrSessionClosed)
	}
	assert.Equal(t, 1, committed)
	assert.Len(t, f.shell.Appointments(ctx, jane), 1)
}

func TestCompleteBooking_IncompleteAddsNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.bookings.InitiateSession(ctx, jane.UID, 7)
	require.NoError(t, err)

	_, _, err = f.shell.CompleteBooking(ctx, jane, sess.ID())
	assert.ErrorIs(t, err, booking.ErrIncompleteSelection)
	assert.Empty(t, f.shell.Appointments(ctx, jane))
}

func TestCompleteBooking_OtherUsersSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.bookings.InitiateSession(ctx, "someone-else", 7)
	require.NoError(t, err)

	_, _, err = f.shell.CompleteBooking(ctx, jane, sess.ID())
	assert.ErrorIs(t, err, booking.ErrSessionNotFound)
}

func TestCancelAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.bookings.InitiateSession(ctx, jane.UID, 7)
	require.NoError(t, err)
	_, err = f.bookings.SelectDate(ctx, jane.UID, sess.ID(), "2024-01-04")
	require.NoError(t, err)
	_, err = f.bookings.SelectTime(ctx, jane.UID, sess.ID(), "02:00 PM")
	require.NoError(t, err)
	appt, _, err := f.shell.CompleteBooking(ctx, jane, sess.ID())
	require.NoError(t, err)

	removed, err := f.shell.CancelAppointment(ctx, jane, appt.ID+1)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = f.shell.CancelAppointment(ctx, jane, appt.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, f.shell.Appointments(ctx, jane))
}

func TestSignOutReloadsList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Empty(t, f.shell.Appointments(ctx, jane))
	require.NoError(t, f.mr.Set("storage:users:u1:userAppointments",
		`[{"id":1,"doctor":{"id":7,"name":"Dr. A"},"time":"09:00 AM"}]`))

	state := f.shell.SignOut(jane)
	assert.Equal(t, models.PageHome, state.CurrentPage)
	assert.Len(t, f.shell.Appointments(ctx, jane), 1)
}
