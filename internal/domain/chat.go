package domain

import "time"

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one line of the assistant transcript
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
