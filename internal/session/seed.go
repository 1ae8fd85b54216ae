package session

import (
	"time"

	"github.com/google/uuid"

	"moneywise/internal/chat"
	"moneywise/internal/domain"
)

// Starting balances of a fresh session
const (
	SeedWallet  int64 = 1250
	SeedSavings int64 = 750
)

// New returns a freshly seeded session started at now.
func New(now time.Time) *domain.Session {
	day := 24 * time.Hour
	s := &domain.Session{
		ID:        uuid.NewString(),
		Wallet:    domain.WalletAccount{Balance: SeedWallet},
		Savings:   domain.SavingsAccount{Balance: SeedSavings},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Goals = []domain.SavingsGoal{
		{ID: uuid.NewString(), Name: "New Bicycle", TargetAmount: 5000, SavedAmount: 2500, Deadline: now.AddDate(0, 3, 0)},
		{ID: uuid.NewString(), Name: "Gaming Console", TargetAmount: 15000, SavedAmount: 8000, Deadline: now.AddDate(0, 9, 0)},
		{ID: uuid.NewString(), Name: "Birthday Party", TargetAmount: 2000, SavedAmount: 1200, Deadline: now.AddDate(0, 1, 0)},
	}

	// oldest first; RecordActivity keeps the log newest first
	history := []struct {
		typ      domain.ActivityType
		category string
		desc     string
		amount   int64
		method   string
		ago      time.Duration
	}{
		{domain.ActivityExpense, "Transport", "Bus Fare", -25, "UPI", 7 * day},
		{domain.ActivityExpense, "Food", "Pizza with Friends", -150, "QR Scanner", 6 * day},
		{domain.ActivityExpense, "Education", "Book Store Purchase", -80, "Bank Transfer", 4 * day},
		{domain.ActivitySavings, "Savings", "Saved for New Bike", -100, "Internal Transfer", 3 * day},
		{domain.ActivityExpense, "Entertainment", "Movie Ticket", -120, "UPI", 2 * day},
		{domain.ActivityIncome, "Allowance", "Weekly Pocket Money", 200, "Parent Transfer", day},
		{domain.ActivityExpense, "Food", "Ice Cream Shop", -50, "QR Scanner", 2 * time.Hour},
	}
	balance := SeedWallet
	for _, h := range history {
		balance -= h.amount
	}
	for _, h := range history {
		balance += h.amount
		s.RecordActivity(domain.Activity{
			ID:           uuid.NewString(),
			Type:         h.typ,
			Category:     h.category,
			Description:  h.desc,
			Amount:       h.amount,
			Method:       h.method,
			BalanceAfter: balance,
			Timestamp:    now.Add(-h.ago),
		})
	}

	s.AppendChat(domain.ChatMessage{
		ID:        uuid.NewString(),
		Text:      chat.Greeting,
		Sender:    domain.SenderBot,
		Timestamp: now,
	})
	return s
}
