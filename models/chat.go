package models

import "time"

// Message senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
	SenderSystem    = "system"
)

// ChatMessage is one entry in a session's append-only log.
type ChatMessage struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession holds the per-session conversation state. The log is append-only:
// entries are never reordered or mutated after append.
type ChatSession struct {
	ID         string        `json:"id"`
	Language   string        `json:"language"`
	GlowtypeID string        `json:"glowtype_id,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	Messages   []ChatMessage `json:"messages"`
}

// Crisis severity levels, ordered by urgency.
type CrisisSeverity string

const (
	SeverityNone     CrisisSeverity = "none"
	SeverityElevated CrisisSeverity = "elevated"
	SeverityHigh     CrisisSeverity = "high"
)

// CrisisAssessment is the detector's verdict for a single message. Ephemeral;
// it informs one routing decision and is not persisted.
type CrisisAssessment struct {
	Severity   CrisisSeverity
	Categories []string
}

// Wire shapes for the chat endpoints.

type ChatSessionRequest struct {
	Language   string `json:"language"`
	GlowtypeID string `json:"glowtypeId"`
}

type ChatSessionResponse struct {
	SessionID string `json:"sessionId"`
}

type ChatMessageRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Language  string `json:"language"`
}

type ChatMessageResponse struct {
	Reply        string  `json:"reply"`
	SafetyNotice *string `json:"safetyNotice"`
}

type ChatLogResponse struct {
	SessionID string        `json:"sessionId"`
	Messages  []ChatMessage `json:"messages"`
}
