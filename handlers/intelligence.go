package handlers

import (
	"errors"
	"net/http"
	"strings"

	"medigen/models"
	ai "medigen/services/intelligence"
	"medigen/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientIDHeader identifies an anonymous chat across requests.
const ClientIDHeader = "X-Client-ID"

type AIHandler struct {
	Assistant *ai.HealthAssistant
}

func NewAIHandler(assistant *ai.HealthAssistant) *AIHandler {
	return &AIHandler{Assistant: assistant}
}

// chatID keys the conversation by user, or by client id for anonymous
// visitors. A visitor without a client id gets a fresh one back.
func chatID(c *gin.Context) string {
	if uid, ok := identityUID(c); ok {
		return "user:" + uid
	}
	clientID := strings.TrimSpace(c.GetHeader(ClientIDHeader))
	if _, err := uuid.Parse(clientID); err != nil {
		clientID = uuid.New().String()
	}
	c.Header(ClientIDHeader, clientID)
	return "anon:" + clientID
}

func (h *AIHandler) HistoryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.Assistant.History(c.Request.Context(), chatID(c))})
}

// ChatHandler answers a prompt. A model failure still answers 200, with the
// apology as the reply.
func (h *AIHandler) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reply, messages, err := h.Assistant.Send(c.Request.Context(), chatID(c), req.Text)
	if errors.Is(err, ai.ErrEmptyPrompt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply, Messages: messages})
}
