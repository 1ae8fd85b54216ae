package domain

import "time"

// ActivityType classifies a history entry
type ActivityType string

const (
	ActivityIncome  ActivityType = "income"  // Money coming into the wallet
	ActivityExpense ActivityType = "expense" // Money spent from the wallet
	ActivitySavings ActivityType = "savings" // Money moved between wallet and savings
)

// Activity is one entry of the wallet history reviewed by the parent
type Activity struct {
	ID           string       `json:"id"`            // Entry ID
	Type         ActivityType `json:"type"`          // income, expense or savings
	Category     string       `json:"category"`      // Spending category
	Description  string       `json:"description"`   // Free text
	Amount       int64        `json:"amount"`        // Signed: negative leaves the wallet
	Method       string       `json:"method"`        // How it happened
	BalanceAfter int64        `json:"balance_after"` // Wallet balance after the entry
	Timestamp    time.Time    `json:"timestamp"`     // When it happened
}
