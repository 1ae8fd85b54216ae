package api

import (
	"net/http" // HTTP status codes
	"strings"  // Category trimming
	"time"     // Payment delay

	"moneywise/internal/domain"  // Session model
	"moneywise/internal/ledger"  // Rule engine
	"moneywise/internal/session" // Session store
	"moneywise/internal/utils"   // Cache

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/google/uuid"        // Record IDs
	"github.com/shopspring/decimal" // Amount decoding
	"github.com/sirupsen/logrus"    // Logging library
)

const defaultPaymentCategory = "Payments"

// PayRequest is the body of POST /payments
type PayRequest struct {
	Amount    decimal.Decimal      `json:"amount"`
	Method    domain.PaymentMethod `json:"method" binding:"required"`
	Recipient string               `json:"recipient"`
	Category  string               `json:"category"`
}

// WalletResponse is the wallet card
type WalletResponse struct {
	Wallet  ledger.WalletOverview `json:"wallet"`
	Display string                `json:"display"`
	Cached  bool                  `json:"cached"`
}

// GetWalletHandler returns the wallet overview, served from redis when cached
func GetWalletHandler(store session.Store, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessionID(c)
		ctx := c.Request.Context()

		// Try to get from cache first
		var resp WalletResponse
		if hit, err := cache.Get(ctx, utils.WalletKey(id, sessionVersion(c)), &resp); err != nil {
			logrus.WithFields(logrus.Fields{"session_id": id, "error": err.Error()}).Warn("Wallet cache read failed")
		} else if hit {
			resp.Cached = true
			c.JSON(http.StatusOK, resp)
			return
		}

		s, err := store.Get(ctx, id) // Fetch from store if not cached
		if err != nil {
			respondError(c, err)
			return
		}
		resp = WalletResponse{
			Wallet:  ledger.Overview(s.Wallet.Balance, s.Savings.Balance),
			Display: ledger.Display(s.Wallet.Balance),
		}
		// Cache under the version the snapshot was read at
		if err := cache.Set(ctx, utils.WalletKey(id, s.Version), resp); err != nil {
			logrus.WithFields(logrus.Fields{"session_id": id, "error": err.Error()}).Warn("Wallet cache write failed")
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ListPaymentsHandler returns the payment log, newest first
func ListPaymentsHandler(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := store.Get(c.Request.Context(), sessionID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": s.Payments})
	}
}

// PaymentHandler validates a payment, waits the processing delay and then
// commits it against the balance current at commit time.
func PaymentHandler(store session.Store, cache *utils.Cache, deferrer session.Deferrer, delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PayRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, ledger.ErrInvalidAmount) // Bad body reads as a bad amount
			return
		}
		amount, err := ledger.AmountFromDecimal(req.Amount)
		if err != nil {
			respondError(c, err)
			return
		}

		id := sessionID(c)
		ctx := c.Request.Context()
		s, err := store.Get(ctx, id) // Snapshot for the early check
		if err != nil {
			respondError(c, err)
			return
		}
		// Reject before the delay so the child sees the error at once
		if _, err := ledger.Pay(s.Wallet.Balance, amount, req.Method, req.Recipient, time.Now()); err != nil {
			respondError(c, err)
			return
		}

		if err := deferrer.Wait(ctx, delay); err != nil { // Simulated processing
			respondError(c, err)
			return
		}

		var record domain.PaymentRecord
		updated, err := store.Update(ctx, id, func(s *domain.Session) error {
			// Balance may have changed during the delay
			res, err := ledger.Pay(s.Wallet.Balance, amount, req.Method, req.Recipient, time.Now())
			if err != nil {
				return err
			}
			res.Record.ID = uuid.NewString()
			record = res.Record
			s.Wallet.Balance = res.NewBalance // Debit wallet
			s.RecordPayment(record)           // Newest first
			s.RecordActivity(domain.Activity{
				ID:           uuid.NewString(),
				Type:         domain.ActivityExpense,
				Category:     paymentCategory(req.Category),
				Description:  "Paid " + record.Recipient,
				Amount:       -amount,
				Method:       req.Method.Label(),
				BalanceAfter: res.NewBalance,
				Timestamp:    record.Timestamp,
			})
			return nil // Commit
		})
		if err != nil {
			respondError(c, err)
			return
		}
		invalidate(c, cache, id, updated.Version-1) // Drop the superseded cached reads

		logCommit(id, "payment", amount, logrus.Fields{"method": req.Method, "recipient": record.Recipient})
		c.JSON(http.StatusOK, gin.H{
			"message": "Payment successful",
			"display": ledger.Display(amount) + " paid via " + req.Method.Label(),
			"payment": record,
			"balance": updated.Wallet.Balance,
		})
	}
}

func paymentCategory(category string) string {
	if c := strings.TrimSpace(category); c != "" {
		return c
	}
	return defaultPaymentCategory
}
