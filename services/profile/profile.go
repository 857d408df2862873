// Package profile loads and saves the patient's health profile.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	kvRepo "medigen/database/repository/kv"
	"medigen/models"
	"medigen/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var genders = map[string]bool{
	"":                  true,
	"Male":              true,
	"Female":            true,
	"Other":             true,
	"Prefer not to say": true,
}

// NewValidator returns a validator with the profile rules registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return genders[fl.Field().String()]
	})
	return v
}

// ValidationError lists the profile fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid profile fields: " + strings.Join(e.Fields, ", ")
}

type Service struct {
	store    kvRepo.Store
	validate *validator.Validate
}

func NewService(store kvRepo.Store) *Service {
	return &Service{store: store, validate: NewValidator()}
}

func key(uid string) string {
	return kvRepo.UserKey(uid, utils.ProfileKey)
}

// Load returns the stored profile. A missing or corrupt profile reads as a
// blank one. A profile without a patient id gets one, and the id is written
// back so that it stays stable.
func (s *Service) Load(ctx context.Context, uid string) models.UserProfile {
	var p models.UserProfile
	found, err := kvRepo.LoadJSON(ctx, s.store, key(uid), &p)
	if err != nil {
		utils.GetLogger().Warn("failed to load profile", zap.String("uid", uid), zap.Error(err))
		utils.PersistenceFailures.WithLabelValues("read").Inc()
		p = models.UserProfile{}
		found = false
	}
	normalize(&p)

	if p.PatientID == "" {
		p.PatientID = uuid.New().String()
		// Only write back over a profile that actually exists.
		if found {
			if err := kvRepo.SaveJSON(ctx, s.store, key(uid), p); err != nil {
				utils.GetLogger().Warn("failed to store patient id", zap.String("uid", uid), zap.Error(err))
				utils.PersistenceFailures.WithLabelValues("write").Inc()
			}
		}
	}
	return p
}

// Save validates p, drops blank list entries and persists it. The patient id
// already on record wins over the one submitted. If the stored profile cannot
// be read nothing is written. On a storage failure the cleaned profile is
// returned together with the error.
func (s *Service) Save(ctx context.Context, uid string, p models.UserProfile) (models.UserProfile, error) {
	p.Allergies = dropBlank(p.Allergies)
	p.CurrentMedications = dropBlank(p.CurrentMedications)

	if err := s.validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace())
			}
			return p, &ValidationError{Fields: fields}
		}
		return p, fmt.Errorf("failed to validate profile: %w", err)
	}

	var current models.UserProfile
	found, err := kvRepo.LoadJSON(ctx, s.store, key(uid), &current)
	if err != nil && !errors.Is(err, kvRepo.ErrMalformed) {
		// Without the stored record the patient id cannot be kept.
		utils.GetLogger().Error("failed to read profile before save", zap.String("uid", uid), zap.Error(err))
		utils.PersistenceFailures.WithLabelValues("read").Inc()
		return p, fmt.Errorf("failed to read profile: %w", err)
	}
	if found && current.PatientID != "" {
		p.PatientID = current.PatientID
	}
	if p.PatientID == "" {
		p.PatientID = uuid.New().String()
	}

	if err := kvRepo.SaveJSON(ctx, s.store, key(uid), p); err != nil {
		utils.GetLogger().Error("failed to save profile", zap.String("uid", uid), zap.Error(err))
		utils.PersistenceFailures.WithLabelValues("write").Inc()
		return p, err
	}
	return p, nil
}

func normalize(p *models.UserProfile) {
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	if p.CurrentMedications == nil {
		p.CurrentMedications = []string{}
	}
}

func dropBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
