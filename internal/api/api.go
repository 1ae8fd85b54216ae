package api

import (
	"context"  // Cache invalidation
	"errors"   // Error classification
	"net/http" // HTTP status codes
	"time"     // Timestamps in logs

	"moneywise/internal/ledger"     // Rule errors
	"moneywise/internal/middleware" // Context keys
	"moneywise/internal/session"    // Store errors
	"moneywise/internal/utils"      // Cache

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Amount decoding
	"github.com/sirupsen/logrus"    // Logging library
)

// AmountRequest is the body of every single-amount operation. The amount may
// be sent as a JSON number or string.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"` // Whole currency units
}

// PresetOption is a fixed amount button and whether it is enabled
type PresetOption struct {
	Amount  int64 `json:"amount"`
	Enabled bool  `json:"enabled"`
}

// sessionID returns the session resolved by middleware.SessionMiddleware
func sessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionIDKey)
}

// bindAmount decodes and validates an AmountRequest. A malformed body is
// reported the same way as a bad amount.
func bindAmount(c *gin.Context) (int64, bool) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, ledger.ErrInvalidAmount)
		return 0, false
	}
	amount, err := ledger.AmountFromDecimal(req.Amount)
	if err != nil {
		respondError(c, err)
		return 0, false
	}
	return amount, true
}

// respondError renders rule errors as notifications and logs everything else
func respondError(c *gin.Context, err error) {
	var rule *ledger.RuleError
	switch {
	case errors.As(err, &rule):
		c.JSON(http.StatusBadRequest, gin.H{"error": rule.Message, "code": rule.Code, "title": rule.Title})
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session has ended"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logrus.WithFields(logrus.Fields{
			"session_id": sessionID(c),
			"path":       c.FullPath(),
		}).Warn("Request cancelled before commit")
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "Request cancelled, nothing was changed"})
	default:
		logrus.WithFields(logrus.Fields{
			"session_id": sessionID(c),
			"path":       c.FullPath(),
			"error":      err.Error(),
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// sessionVersion returns the committed version the middleware loaded
func sessionVersion(c *gin.Context) int64 {
	return c.GetInt64(middleware.VersionKey)
}

// invalidate drops the read models cached for a superseded version
func invalidate(c *gin.Context, cache *utils.Cache, id string, version int64) {
	if err := cache.InvalidateSession(c.Request.Context(), id, version); err != nil {
		logrus.WithFields(logrus.Fields{
			"session_id": id,
			"error":      err.Error(),
		}).Warn("Cache invalidation failed")
	}
}

// logCommit records a successful balance change
func logCommit(id, kind string, amount int64, fields logrus.Fields) {
	entry := logrus.WithFields(logrus.Fields{
		"session_id": id,
		"amount":     amount,
		"type":       kind,
		"timestamp":  time.Now().Format(time.RFC3339),
	})
	if fields != nil {
		entry = entry.WithFields(fields)
	}
	entry.Info("Wallet transaction")
}
