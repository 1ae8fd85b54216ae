package api

import (
	"net/http" // HTTP status codes
	"time"     // Goal deadlines

	"moneywise/internal/domain"  // Session model
	"moneywise/internal/ledger"  // Rule engine
	"moneywise/internal/session" // Session store
	"moneywise/internal/utils"   // Cache

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/google/uuid"        // Record IDs
	"github.com/shopspring/decimal" // Amount decoding
)

const deadlineLayout = "2006-01-02"

// GoalRequest is the body of POST /goals
type GoalRequest struct {
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Saved    decimal.Decimal `json:"saved"`
	Deadline string          `json:"deadline"` // YYYY-MM-DD
}

// GoalView is a goal with its derived progress
type GoalView struct {
	domain.SavingsGoal
	Progress ledger.GoalProgress `json:"progress"`
}

// GetSavingsHandler returns the savings balance and the preset buttons
func GetSavingsHandler(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := store.Get(c.Request.Context(), sessionID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		presets := make([]PresetOption, 0, len(ledger.SavingsPresets))
		for _, p := range ledger.SavingsPresets {
			presets = append(presets, PresetOption{Amount: p, Enabled: ledger.SavingsPresetEnabled(s.Wallet.Balance, p)})
		}
		overview := ledger.Overview(s.Wallet.Balance, s.Savings.Balance)
		c.JSON(http.StatusOK, gin.H{
			"savings":      s.Savings.Balance,
			"wallet":       s.Wallet.Balance,
			"savings_rate": overview.SavingsRate,
			"presets":      presets,
			"display":      ledger.Display(s.Savings.Balance),
		})
	}
}

// SavingsDepositHandler moves money from the wallet into savings
func SavingsDepositHandler(store session.Store, cache *utils.Cache) gin.HandlerFunc {
	return savingsTransfer(store, cache, true)
}

// SavingsWithdrawHandler moves money from savings back into the wallet
func SavingsWithdrawHandler(store session.Store, cache *utils.Cache) gin.HandlerFunc {
	return savingsTransfer(store, cache, false)
}

func savingsTransfer(store session.Store, cache *utils.Cache, toSavings bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		amount, ok := bindAmount(c) // Parse and validate the amount
		if !ok {
			return
		}
		id := sessionID(c)
		updated, err := store.Update(c.Request.Context(), id, func(s *domain.Session) error {
			move, signed, desc := ledger.MoveToWallet, amount, "Moved from savings"
			if toSavings {
				move, signed, desc = ledger.MoveToSavings, -amount, "Moved to savings"
			}
			b, err := move(s.Wallet.Balance, s.Savings.Balance, amount)
			if err != nil {
				return err // Nothing is committed
			}
			s.Wallet.Balance, s.Savings.Balance = b.Wallet, b.Savings // Both sides move together
			s.RecordActivity(domain.Activity{
				ID:           uuid.NewString(),
				Type:         domain.ActivitySavings,
				Category:     "Savings",
				Description:  desc,
				Amount:       signed,
				Method:       "Savings Account",
				BalanceAfter: b.Wallet,
				Timestamp:    time.Now(),
			})
			return nil
		})
		if err != nil {
			respondError(c, err)
			return
		}
		invalidate(c, cache, id, updated.Version-1)

		message := ledger.Display(amount) + " moved to your savings account."
		kind := "savings_deposit"
		if !toSavings {
			message = ledger.Display(amount) + " moved to your wallet."
			kind = "savings_withdraw"
		}
		logCommit(id, kind, amount, nil)
		c.JSON(http.StatusOK, gin.H{
			"message": message,
			"wallet":  updated.Wallet.Balance,
			"savings": updated.Savings.Balance,
		})
	}
}

// ListGoalsHandler returns every goal with its progress and the totals
func ListGoalsHandler(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := store.Get(c.Request.Context(), sessionID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		now := time.Now()
		goals := make([]GoalView, 0, len(s.Goals))
		for _, g := range s.Goals {
			goals = append(goals, GoalView{SavingsGoal: g, Progress: ledger.Progress(g, now)})
		}
		c.JSON(http.StatusOK, gin.H{"goals": goals, "total": ledger.TotalProgress(s.Goals)})
	}
}

// CreateGoalHandler adds a savings goal. Goals do not move money.
func CreateGoalHandler(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, ledger.ErrInvalidGoal)
			return
		}
		target, err := ledger.AmountFromDecimal(req.Target)
		if err != nil {
			respondError(c, err)
			return
		}
		var saved int64
		if !req.Saved.IsZero() {
			if saved, err = ledger.AmountFromDecimal(req.Saved); err != nil {
				respondError(c, err)
				return
			}
		}
		deadline, err := time.Parse(deadlineLayout, req.Deadline) // Date only
		if err != nil {
			respondError(c, ledger.ErrInvalidGoal)
			return
		}
		goal, err := ledger.NewGoal(req.Name, target, saved, deadline)
		if err != nil {
			respondError(c, err)
			return
		}
		goal.ID = uuid.NewString() // Assign ID

		id := sessionID(c)
		if _, err := store.Update(c.Request.Context(), id, func(s *domain.Session) error {
			s.Goals = append(s.Goals, goal)
			return nil
		}); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Goal created",
			"goal":    GoalView{SavingsGoal: goal, Progress: ledger.Progress(goal, time.Now())},
		})
	}
}
