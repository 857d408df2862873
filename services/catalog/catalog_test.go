package catalog

import (
	"testing"

	"medigen/models"

	"github.com/stretchr/testify/assert"
)

var testDoctors = []models.Doctor{
	{ID: 1, Name: "Dr. Jane Smith", Specialty: "Cardiology", Location: "Nairobi", Rating: 4.5},
	{ID: 2, Name: "Dr. John Doe", Specialty: "Dermatology", Location: "Mombasa", Rating: 4.9},
	{ID: 3, Name: "Dr. Mary Jones", Specialty: "Cardiology", Location: "Kisumu", Rating: 4.9},
}

func ids(ds []models.Doctor) []int {
	out := make([]int, len(ds))
	for i, d := range ds {
		out[i] = d.ID
	}
	return out
}

func TestSearch(t *testing.T) {
	c := NewWithDoctors(testDoctors)

	assert.Equal(t, []int{1, 2, 3}, ids(c.Search("", "All")))
	assert.Equal(t, []int{1, 2, 3}, ids(c.Search("", "")))
	assert.Equal(t, []int{1, 3}, ids(c.Search("", "Cardiology")))
	assert.Equal(t, []int{2}, ids(c.Search("MOMBASA", "All")))
	assert.Equal(t, []int{1, 3}, ids(c.Search("cardio", "")))
	assert.Equal(t, []int{3}, ids(c.Search("mary", "Cardiology")))
	assert.Empty(t, c.Search("mary", "Dermatology"))
	assert.NotNil(t, c.Search("nobody", ""))
}

func TestSpecialties(t *testing.T) {
	c := NewWithDoctors(testDoctors)
	assert.Equal(t, []string{"All", "Cardiology", "Dermatology"}, c.Specialties())
}

func TestTopRated(t *testing.T) {
	c := NewWithDoctors(testDoctors)
	assert.Equal(t, []int{2, 3}, ids(c.TopRated(2)))
	assert.Equal(t, []int{2, 3, 1}, ids(c.TopRated(10)))
}

func TestDoctorLookup(t *testing.T) {
	c := NewWithDoctors(testDoctors)

	d, ok := c.Doctor(2)
	assert.True(t, ok)
	assert.Equal(t, "Dr. John Doe", d.Name)

	_, ok = c.Doctor(42)
	assert.False(t, ok)
}

func TestDoctorsReturnsCopy(t *testing.T) {
	c := NewWithDoctors(testDoctors)
	list := c.Doctors()
	list[0].Name = "changed"

	d, _ := c.Doctor(1)
	assert.Equal(t, "Dr. Jane Smith", d.Name)
}

func TestDefaultCatalog(t *testing.T) {
	c := New()
	seen := map[int]bool{}
	for _, d := range c.Doctors() {
		assert.False(t, seen[d.ID], "duplicate id %d", d.ID)
		seen[d.ID] = true
		assert.GreaterOrEqual(t, d.Rating, 0.0)
		assert.LessOrEqual(t, d.Rating, 5.0)
		assert.Len(t, d.Initials(), 2, d.Name)
	}
	assert.NotEmpty(t, c.Hospitals())
	assert.NotEmpty(t, c.Articles())
	assert.NotEmpty(t, c.ForumTopics())
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JS", models.Doctor{Name: "Dr. Jane Smith"}.Initials())
	assert.Equal(t, "A", models.Doctor{Name: "Dr. A"}.Initials())
	assert.Equal(t, "", models.Doctor{Name: "Smith"}.Initials())
}
