package api

import (
	"net/http" // HTTP status codes
	"time"     // Timestamps

	"moneywise/internal/domain"  // Session model
	"moneywise/internal/ledger"  // Rule engine
	"moneywise/internal/session" // Session store
	"moneywise/internal/utils"   // Cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Record IDs
	"github.com/sirupsen/logrus" // Logging library
)

// SummaryResponse is the parent dashboard
type SummaryResponse struct {
	Summary ledger.Summary        `json:"summary"`
	Wallet  ledger.WalletOverview `json:"wallet"`
	Cached  bool                  `json:"cached"`
}

// TopUpHandler lets the parent add any amount up to the wallet limit
func TopUpHandler(store session.Store, cache *utils.Cache) gin.HandlerFunc {
	return creditWallet(store, cache, "topup", ledger.AddFunds)
}

// QuickAddHandler lets the parent add one of the preset amounts
func QuickAddHandler(store session.Store, cache *utils.Cache) gin.HandlerFunc {
	return creditWallet(store, cache, "quick_add", ledger.QuickAdd)
}

func creditWallet(store session.Store, cache *utils.Cache, kind string, credit func(balance, amount int64) (int64, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		amount, ok := bindAmount(c)
		if !ok {
			return
		}
		id := sessionID(c)
		updated, err := store.Update(c.Request.Context(), id, func(s *domain.Session) error {
			balance, err := credit(s.Wallet.Balance, amount) // Enforces the wallet limit
			if err != nil {
				return err
			}
			s.Wallet.Balance = balance // Credit wallet
			s.RecordActivity(domain.Activity{
				ID:           uuid.NewString(),
				Type:         domain.ActivityIncome,
				Category:     "Allowance",
				Description:  "Money added by parent",
				Amount:       amount,
				Method:       "Parent Transfer",
				BalanceAfter: balance,
				Timestamp:    time.Now(),
			})
			return nil
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"session_id": id,
				"amount":     amount,
				"type":       kind,
				"error":      err.Error(),
			}).Info("Wallet credit rejected")
			respondError(c, err)
			return
		}
		invalidate(c, cache, id, updated.Version-1) // Invalidate cached wallet and summary

		logCommit(id, kind, amount, nil)
		c.JSON(http.StatusOK, gin.H{
			"message":          ledger.Display(amount) + " has been added to the wallet.",
			"balance":          updated.Wallet.Balance,
			"available_to_add": ledger.AvailableToAdd(updated.Wallet.Balance),
		})
	}
}

// QuickAddOptionsHandler returns the preset buttons with their enabled state
func QuickAddOptionsHandler(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := store.Get(c.Request.Context(), sessionID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		// Presets that would push the wallet over the limit are disabled
		presets := make([]PresetOption, 0, len(ledger.QuickAddAmounts))
		for _, p := range ledger.QuickAddAmounts {
			presets = append(presets, PresetOption{Amount: p, Enabled: ledger.QuickAddEnabled(s.Wallet.Balance, p)})
		}
		c.JSON(http.StatusOK, gin.H{
			"presets":          presets,
			"available_to_add": ledger.AvailableToAdd(s.Wallet.Balance),
		})
	}
}

// SummaryHandler returns the spending summary, served from redis when cached
func SummaryHandler(store session.Store, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessionID(c)
		ctx := c.Request.Context()

		var resp SummaryResponse
		if hit, err := cache.Get(ctx, utils.SummaryKey(id, sessionVersion(c)), &resp); err != nil {
			logrus.WithFields(logrus.Fields{"session_id": id, "error": err.Error()}).Warn("Summary cache read failed")
		} else if hit {
			resp.Cached = true
			c.JSON(http.StatusOK, resp)
			return
		}

		s, err := store.Get(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		resp = SummaryResponse{
			Summary: ledger.Summarize(s.Activity, time.Now()),
			Wallet:  ledger.Overview(s.Wallet.Balance, s.Savings.Balance),
		}
		if err := cache.Set(ctx, utils.SummaryKey(id, s.Version), resp); err != nil { // Cache the result
			logrus.WithFields(logrus.Fields{"session_id": id, "error": err.Error()}).Warn("Summary cache write failed")
		}
		c.JSON(http.StatusOK, resp)
	}
}
