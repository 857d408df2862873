package handlers

import (
	"errors"
	"net/http"

	"medigen/models"
	"medigen/services/profile"
	"medigen/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	Profiles *profile.Service
}

func NewProfileHandler(svc *profile.Service) *ProfileHandler {
	return &ProfileHandler{Profiles: svc}
}

// GetProfileHandler returns the authenticated user's profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	uid, ok := identityUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, models.ProfileResponse{
		Profile: h.Profiles.Load(c.Request.Context(), uid),
		Saved:   true,
	})
}

// UpdateProfileHandler saves the profile. A storage failure still answers 200
// with saved=false.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	uid, ok := identityUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UserProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	saved, err := h.Profiles.Save(c.Request.Context(), uid, req)
	var verr *profile.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid profile", "fields": verr.Fields})
		return
	case err != nil:
		logger.Warn("profile not saved", zap.Error(err))
		c.JSON(http.StatusOK, models.ProfileResponse{Profile: saved, Saved: false})
		return
	}
	c.JSON(http.StatusOK, models.ProfileResponse{Profile: saved, Saved: true})
}
