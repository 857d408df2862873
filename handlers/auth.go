package handlers

import (
	"net/http"
	"time"

	"medigen/middleware"
	"medigen/services/identity"
	"medigen/services/shell"
	"medigen/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const devTokenTTL = 24 * time.Hour

type AuthHandler struct {
	Identity *identity.Service
	Shell    *shell.Shell
	// Issuer is set only outside production.
	Issuer *identity.TokenVerifier
}

func NewAuthHandler(svc *identity.Service, sh *shell.Shell, issuer *identity.TokenVerifier) *AuthHandler {
	return &AuthHandler{Identity: svc, Shell: sh, Issuer: issuer}
}

// NavigateHandler resolves a page request through the sign-in gate.
func (h *AuthHandler) NavigateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, shell.Navigate(c.Param("page"), middleware.CurrentIdentity(c)))
}

func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)
	id := middleware.CurrentIdentity(c)
	if id == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Identity.SignOut(c.Request.Context(), middleware.CurrentToken(c), *id); err != nil {
		logger.Error("Failed to sign out", zap.String("uid", id.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, h.Shell.SignOut(*id))
}

type devTokenRequest struct {
	UID   string `json:"uid" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

// DevTokenHandler mints a locally signed token for a development identity.
func (h *AuthHandler) DevTokenHandler(c *gin.Context) {
	if h.Issuer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not available"})
		return
	}
	var req devTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, err := h.Issuer.Issue(req.UID, req.Email, devTokenTTL)
	if err != nil {
		getLogger(c).Error("Failed to issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(devTokenTTL.Seconds()),
	})
}
