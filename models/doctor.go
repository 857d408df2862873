package models

import "strings"

// Doctor is read-only catalog data. Appointments keep a copy by value.
type Doctor struct {
	ID           int     `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Specialty    string  `bson:"specialty" json:"specialty"`
	Location     string  `bson:"location" json:"location"`
	Rating       float64 `bson:"rating" json:"rating"`             // 0 to 5
	Availability string  `bson:"availability" json:"availability"` // e.g. "Available Today"
	AvatarColor  string  `bson:"avatarColor" json:"avatarColor"`
}

// Initials returns the avatar initials, taken from the second and third words
// of the name so that the "Dr." prefix is skipped.
func (d Doctor) Initials() string {
	var b strings.Builder
	words := strings.Fields(d.Name)
	for i := 1; i < len(words) && i < 3; i++ {
		r := []rune(words[i])
		b.WriteRune(r[0])
	}
	return b.String()
}

// DoctorCard is the directory view of a doctor.
type DoctorCard struct {
	Doctor
	Initials string `json:"initials"`
}

func NewDoctorCard(d Doctor) DoctorCard {
	return DoctorCard{Doctor: d, Initials: d.Initials()}
}
