package domain

import (
	"slices"
	"time"
)

// View selects which screen set a caller is using
type View string

const (
	ViewChild  View = "child"
	ViewParent View = "parent"
)

// Valid reports whether v is a known view
func (v View) Valid() bool {
	return v == ViewChild || v == ViewParent
}

// Session holds all monetary state of one simulator run
type Session struct {
	ID        string          `json:"id" gorm:"primaryKey;size:36"`                    // Primary key
	Wallet    WalletAccount   `json:"wallet" gorm:"embedded;embeddedPrefix:wallet_"`   // Spendable balance
	Savings   SavingsAccount  `json:"savings" gorm:"embedded;embeddedPrefix:savings_"` // Savings balance
	Goals     []SavingsGoal   `json:"goals" gorm:"serializer:json;type:json"`          // Savings goals
	Payments  []PaymentRecord `json:"payments" gorm:"serializer:json;type:json"`       // Newest first
	Activity  []Activity      `json:"activity" gorm:"serializer:json;type:json"`       // Newest first
	Chat      []ChatMessage   `json:"chat" gorm:"serializer:json;type:json"`           // Oldest first
	Version   int64           `json:"version" gorm:"not null;default:0"`               // Bumped by every commit
	CreatedAt time.Time       `json:"created_at"`                                      // Session start
	UpdatedAt time.Time       `json:"updated_at" gorm:"index"`                         // Last commit, used by the idle sweeper
}

// Clone returns a deep copy so a failed mutation never leaks into the committed state
func (s *Session) Clone() *Session {
	c := *s
	c.Goals = slices.Clone(s.Goals)
	c.Payments = slices.Clone(s.Payments)
	c.Activity = slices.Clone(s.Activity)
	c.Chat = slices.Clone(s.Chat)
	return &c
}

// RecordPayment prepends a payment record
func (s *Session) RecordPayment(r PaymentRecord) {
	s.Payments = append([]PaymentRecord{r}, s.Payments...)
}

// RecordActivity prepends a history entry
func (s *Session) RecordActivity(a Activity) {
	s.Activity = append([]Activity{a}, s.Activity...)
}

// AppendChat appends a transcript message
func (s *Session) AppendChat(m ChatMessage) {
	s.Chat = append(s.Chat, m)
}
