package models

const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// ChatMessage is one line of the assistant conversation.
type ChatMessage struct {
	ID     int64  `json:"id"`
	Sender string `json:"sender"` // "user" or "ai"
	Text   string `json:"text"`
}

// ChatRequest is the payload of POST /api/ai/chat.
type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

type ChatResponse struct {
	Reply    ChatMessage   `json:"reply"`
	Messages []ChatMessage `json:"messages"`
}
