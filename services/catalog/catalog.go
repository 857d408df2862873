// Package catalog serves the read-only reference data: doctors, hospitals,
// articles and forum topics.
package catalog

import (
	"sort"
	"strings"

	"medigen/models"
)

// AllSpecialties is the specialty filter value that matches every doctor.
const AllSpecialties = "All"

type Catalog struct {
	doctors   []models.Doctor
	hospitals []models.Hospital
	articles  []models.Article
	topics    []models.ForumTopic
}

// New returns the built-in catalog.
func New() *Catalog {
	return &Catalog{
		doctors:   defaultDoctors,
		hospitals: defaultHospitals,
		articles:  defaultArticles,
		topics:    defaultForumTopics,
	}
}

// NewWithDoctors is used by tests and seeding to swap the doctor list.
func NewWithDoctors(doctors []models.Doctor) *Catalog {
	c := New()
	c.doctors = doctors
	return c
}

func (c *Catalog) Doctors() []models.Doctor {
	return append([]models.Doctor(nil), c.doctors...)
}

func (c *Catalog) Doctor(id int) (models.Doctor, bool) {
	for _, d := range c.doctors {
		if d.ID == id {
			return d, true
		}
	}
	return models.Doctor{}, false
}

// Search matches query, case-insensitively, against name, specialty or
// location, and keeps doctors whose specialty equals specialty. An empty
// specialty or "All" keeps everyone. Catalog order is preserved.
func (c *Catalog) Search(query, specialty string) []models.Doctor {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Doctor{}
	for _, d := range c.doctors {
		matchesQuery := q == "" ||
			strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Specialty), q) ||
			strings.Contains(strings.ToLower(d.Location), q)
		matchesSpecialty := specialty == "" || specialty == AllSpecialties || d.Specialty == specialty
		if matchesQuery && matchesSpecialty {
			out = append(out, d)
		}
	}
	return out
}

// Specialties returns "All" then each specialty once, in catalog order.
func (c *Catalog) Specialties() []string {
	out := []string{AllSpecialties}
	seen := map[string]bool{}
	for _, d := range c.doctors {
		if !seen[d.Specialty] {
			seen[d.Specialty] = true
			out = append(out, d.Specialty)
		}
	}
	return out
}

// TopRated returns up to n doctors by descending rating; ties keep catalog order.
func (c *Catalog) TopRated(n int) []models.Doctor {
	out := c.Doctors()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

func (c *Catalog) Hospitals() []models.Hospital {
	return append([]models.Hospital(nil), c.hospitals...)
}

func (c *Catalog) Articles() []models.Article {
	return append([]models.Article(nil), c.articles...)
}

func (c *Catalog) ForumTopics() []models.ForumTopic {
	return append([]models.ForumTopic(nil), c.topics...)
}
