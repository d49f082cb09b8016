package sdk

import "time"

// ChatResponse is the assistant's reply to a chat query.
type ChatResponse struct {
	SessionID   string     `json:"session_id"`
	UserMessage string     `json:"user_message"`
	AIResponse  string     `json:"ai_response"`
	Created     *time.Time `json:"created_at,omitempty"`
}
