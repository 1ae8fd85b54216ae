package domain

import "time"

// SavingsGoal tracks its own progress; it is not linked to SavingsAccount
type SavingsGoal struct {
	ID           string    `json:"id"`            // Goal ID
	Name         string    `json:"name"`          // Display name
	TargetAmount int64     `json:"target_amount"` // Amount to reach
	SavedAmount  int64     `json:"saved_amount"`  // Progress so far
	Deadline     time.Time `json:"deadline"`      // Due date
}
