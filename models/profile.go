package models

type EmergencyContact struct {
	Name         string `json:"name" validate:"max=120"`
	Relationship string `json:"relationship" validate:"max=60"`
	Phone        string `json:"phone" validate:"max=32"`
}

// UserProfile is the patient's health profile.
type UserProfile struct {
	PatientID          string           `json:"patientId"`
	FullName           string           `json:"fullName" validate:"max=120"`
	DateOfBirth        string           `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender             string           `json:"gender" validate:"gender"`
	BloodType          string           `json:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O- Unknown"`
	Allergies          []string         `json:"allergies" validate:"max=50,dive,max=120"`
	CurrentMedications []string         `json:"currentMedications" validate:"max=50,dive,max=120"`
	EmergencyContact   EmergencyContact `json:"emergencyContact"`
}

type ProfileResponse struct {
	Profile UserProfile `json:"profile"`
	Saved   bool        `json:"saved"`
}
