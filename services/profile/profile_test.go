package profile

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	kvRepo "medigen/database/repository/kv"
	"medigen/models"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storedKey = "storage:users:u1:userProfile"

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(kvRepo.NewRedisStore(client)), mr
}

func TestLoad_FirstRunGivesBlankProfile(t *testing.T) {
	svc, mr := newTestService(t)

	p := svc.Load(context.Background(), "u1")
	_, err := uuid.Parse(p.PatientID)
	assert.NoError(t, err)
	assert.Empty(t, p.FullName)
	assert.Equal(t, []string{}, p.Allergies)
	assert.False(t, mr.Exists(storedKey))
}

func TestLoad_CorruptProfile(t *testing.T) {
	svc, mr := newTestService(t)
	require.NoError(t, mr.Set(storedKey, "{{"))

	p := svc.Load(context.Background(), "u1")
	assert.NotEmpty(t, p.PatientID)
	assert.Empty(t, p.FullName)
}

func TestLoad_AssignsMissingPatientID(t *testing.T) {
	svc, mr := newTestService(t)
	require.NoError(t, mr.Set(storedKey, `{"fullName":"Jane Doe"}`))

	first := svc.Load(context.Background(), "u1")
	second := svc.Load(context.Background(), "u1")
	assert.Equal(t, "Jane Doe", first.FullName)
	assert.NotEmpty(t, first.PatientID)
	assert.Equal(t, first.PatientID, second.PatientID)
}

func TestSave_DropsBlankEntries(t *testing.T) {
	svc, mr := newTestService(t)

	saved, err := svc.Save(context.Background(), "u1", models.UserProfile{
		FullName:           "Jane Doe",
		Gender:             "Female",
		BloodType:          "O+",
		DateOfBirth:        "1990-04-12",
		Allergies:          []string{"Penicillin", "", "   "},
		CurrentMedications: []string{""},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Penicillin"}, saved.Allergies)
	assert.Equal(t, []string{}, saved.CurrentMedications)

	raw, err := mr.Get(storedKey)
	require.NoError(t, err)
	var stored models.UserProfile
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, []string{"Penicillin"}, stored.Allergies)
	assert.Equal(t, saved.PatientID, stored.PatientID)
}

func TestSave_KeepsPatientIDOnRecord(t *testing.T) {
	svc, mr := newTestService(t)
	require.NoError(t, mr.Set(storedKey, `{"patientId":"p-1","fullName":"Jane"}`))

	saved, err := svc.Save(context.Background(), "u1", models.UserProfile{PatientID: "forged", FullName: "Jane D"})
	require.NoError(t, err)
	assert.Equal(t, "p-1", saved.PatientID)
	assert.Equal(t, "Jane D", svc.Load(context.Background(), "u1").FullName)
}

func TestSave_Validation(t *testing.T) {
	svc, mr := newTestService(t)

	cases := map[string]models.UserProfile{
		"gender":     {Gender: "Robot"},
		"blood type": {BloodType: "C+"},
		"birth date": {DateOfBirth: "12/04/1990"},
		"long name":  {FullName: strings.Repeat("x", 200)},
	}
	for name, p := range cases {
		_, err := svc.Save(context.Background(), "u1", p)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, name)
	}
	assert.False(t, mr.Exists(storedKey))
}

func TestSave_AcceptsKnownValues(t *testing.T) {
	svc, _ := newTestService(t)

	for _, g := range []string{"", "Male", "Female", "Other", "Prefer not to say"} {
		_, err := svc.Save(context.Background(), "u1", models.UserProfile{Gender: g, BloodType: "Unknown"})
		assert.NoError(t, err, g)
	}
}

// flakyStore fails reads or writes on demand.
type flakyStore struct {
	kvRepo.Store
	failReads, failWrites bool
}

func (s *flakyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.failReads {
		return nil, false, errors.New("read timeout")
	}
	return s.Store.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failWrites {
		return errors.New("READONLY")
	}
	return s.Store.Set(ctx, key, value)
}

func newFlakyService(t *testing.T) (*Service, *flakyStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := &flakyStore{Store: kvRepo.NewRedisStore(client)}
	return NewService(store), store, mr
}

func TestSave_StorageFailure(t *testing.T) {
	svc, store, _ := newFlakyService(t)
	store.failWrites = true

	saved, err := svc.Save(context.Background(), "u1", models.UserProfile{FullName: "Jane"})
	require.Error(t, err)
	assert.Equal(t, "Jane", saved.FullName)
	assert.NotEmpty(t, saved.PatientID)
}

func TestSave_ReadFailureKeepsPatientID(t *testing.T) {
	svc, store, mr := newFlakyService(t)
	require.NoError(t, mr.Set(storedKey, `{"patientId":"p-1","fullName":"Jane"}`))
	store.failReads = true

	_, err := svc.Save(context.Background(), "u1", models.UserProfile{FullName: "Jane D"})
	require.Error(t, err)

	raw, err := mr.Get(storedKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"patientId":"p-1","fullName":"Jane"}`, raw)
}

func TestSave_OverCorruptRecord(t *testing.T) {
	svc, mr := newTestService(t)
	require.NoError(t, mr.Set(storedKey, "{broken"))

	saved, err := svc.Save(context.Background(), "u1", models.UserProfile{FullName: "Jane"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.PatientID)
}
