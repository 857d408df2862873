package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medigen/models"
	"medigen/utils"

	"go.uber.org/zap"
)

// Generator turns a prompt into text.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ChatStore persists conversations by id.
type ChatStore interface {
	Get(ctx context.Context, chatID string) ([]models.ChatMessage, error)
	Set(ctx context.Context, chatID string, messages []models.ChatMessage) error
}

var ErrEmptyPrompt = errors.New("message text is empty")

// ExternalServiceError wraps a failed model call. It is logged and counted,
// never returned to the patient.
type ExternalServiceError struct {
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("assistant unavailable: %v", e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

const defaultReplyTimeout = 30 * time.Second

type HealthAssistant struct {
	gen     Generator
	store   ChatStore
	timeout time.Duration
	now     func() time.Time
}

// NewHealthAssistant accepts a nil generator, in which case every reply is
// the apology.
func NewHealthAssistant(gen Generator, store ChatStore) *HealthAssistant {
	return &HealthAssistant{gen: gen, store: store, timeout: defaultReplyTimeout, now: time.Now}
}

func greeting() models.ChatMessage {
	return models.ChatMessage{ID: 1, Sender: models.SenderAI, Text: Greeting}
}

// History returns the conversation, starting with the greeting.
func (a *HealthAssistant) History(ctx context.Context, chatID string) []models.ChatMessage {
	messages, err := a.store.Get(ctx, chatID)
	if err != nil {
		utils.GetLogger().Warn("failed to load chat history", zap.String("chatID", chatID), zap.Error(err))
		messages = nil
	}
	if len(messages) == 0 {
		return []models.ChatMessage{greeting()}
	}
	return messages
}

// Send records text, asks the model and records its reply. Only an empty
// prompt is an error; a model failure yields the apology as the reply.
func (a *HealthAssistant) Send(ctx context.Context, chatID, text string) (models.ChatMessage, []models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, nil, ErrEmptyPrompt
	}

	messages := a.History(ctx, chatID)
	sentAt := a.now().UnixMilli()
	messages = append(messages, models.ChatMessage{ID: sentAt, Sender: models.SenderUser, Text: text})

	reply := models.ChatMessage{ID: sentAt + 1, Sender: models.SenderAI, Text: a.respond(ctx, text)}
	messages = append(messages, reply)

	if err := a.store.Set(ctx, chatID, messages); err != nil {
		utils.GetLogger().Warn("failed to save chat history", zap.String("chatID", chatID), zap.Error(err))
	}
	return reply, messages, nil
}

func (a *HealthAssistant) respond(ctx context.Context, prompt string) string {
	if a.gen == nil {
		a.fallback(&ExternalServiceError{Err: errors.New("no model configured")})
		return Apology
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.gen.GenerateContent(callCtx, prompt)
	if err != nil {
		a.fallback(&ExternalServiceError{Err: err})
		return Apology
	}
	return text
}

func (a *HealthAssistant) fallback(err error) {
	utils.AssistantFallbacks.Inc()
	utils.GetLogger().Error("Error fetching AI response", zap.Error(err))
}
