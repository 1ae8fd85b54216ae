package api

import (
	"net/http" // HTTP status codes
	"time"     // Summary window

	"moneywise/internal/domain"  // Activity types
	"moneywise/internal/ledger"  // Summaries
	"moneywise/internal/session" // Session store

	"github.com/gin-gonic/gin" // Gin web framework
)

func validFilter(typ string) bool {
	switch domain.ActivityType(typ) {
	case "", ledger.FilterAll, domain.ActivityIncome, domain.ActivityExpense, domain.ActivitySavings:
		return true
	}
	return false
}

// TransactionsHandler returns the filtered history with the overall totals
func TransactionsHandler(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		typ := c.Query("type") // all, income, expense or savings
		if !validFilter(typ) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Type must be all, income, expense or savings"})
			return
		}
		s, err := store.Get(c.Request.Context(), sessionID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		summary := ledger.Summarize(s.Activity, time.Now())
		c.JSON(http.StatusOK, gin.H{
			"transactions": ledger.FilterActivity(s.Activity, c.Query("search"), typ),
			"totals": gin.H{
				"income":   summary.Income,
				"expenses": summary.Expenses,
				"saved":    summary.Saved,
			},
		})
	}
}
