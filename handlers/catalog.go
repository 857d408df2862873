package handlers

import (
	"net/http"
	"strconv"

	"medigen/models"
	"medigen/services/catalog"

	"github.com/gin-gonic/gin"
)

const defaultTopRated = 3

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: c}
}

func cards(doctors []models.Doctor) []models.DoctorCard {
	out := make([]models.DoctorCard, len(doctors))
	for i, d := range doctors {
		out[i] = models.NewDoctorCard(d)
	}
	return out
}

// ListDoctorsHandler filters the directory by ?q= and ?specialty=.
func (h *CatalogHandler) ListDoctorsHandler(c *gin.Context) {
	doctors := h.Catalog.Search(c.Query("q"), c.DefaultQuery("specialty", catalog.AllSpecialties))
	c.JSON(http.StatusOK, gin.H{"doctors": cards(doctors)})
}

func (h *CatalogHandler) GetDoctorHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor id"})
		return
	}
	doctor, ok := h.Catalog.Doctor(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		return
	}
	c.JSON(http.StatusOK, models.NewDoctorCard(doctor))
}

func (h *CatalogHandler) SpecialtiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specialties": h.Catalog.Specialties()})
}

func (h *CatalogHandler) TopRatedHandler(c *gin.Context) {
	limit := defaultTopRated
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, gin.H{"doctors": cards(h.Catalog.TopRated(limit))})
}

func (h *CatalogHandler) HospitalsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hospitals": h.Catalog.Hospitals()})
}

func (h *CatalogHandler) ArticlesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"articles": h.Catalog.Articles()})
}

func (h *CatalogHandler) ForumTopicsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": h.Catalog.ForumTopics()})
}
