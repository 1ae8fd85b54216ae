package api

import (
	"net/http" // HTTP status codes
	"time"     // Durations

	"moneywise/internal/chat"       // Chat bot
	"moneywise/internal/middleware" // Session middleware
	"moneywise/internal/session"    // Session store
	"moneywise/internal/utils"      // Cache

	"github.com/gin-gonic/gin" // Gin web framework
)

// Options carries the dependencies of the HTTP shell
type Options struct {
	Store        session.Store
	Cache        *utils.Cache // nil disables caching
	Deferrer     session.Deferrer
	Bot          *chat.Bot
	JWTSecret    string
	SessionTTL   time.Duration
	PaymentDelay time.Duration
}

// NewRouter wires every route onto a gin engine
func NewRouter(o Options) *gin.Engine {
	r := gin.Default() // Create Gin router with default middleware

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/session", StartSessionHandler(o.Store, o.JWTSecret, o.SessionTTL))

	s := r.Group("/")
	s.Use(middleware.SessionMiddleware(o.JWTSecret, o.Store))
	{
		s.PUT("/session/view", SwitchViewHandler(o.JWTSecret, o.SessionTTL))
		s.DELETE("/session", EndSessionHandler(o.Store, o.Cache))

		s.GET("/wallet", GetWalletHandler(o.Store, o.Cache))
		s.GET("/payments", ListPaymentsHandler(o.Store))
		s.POST("/payments", PaymentHandler(o.Store, o.Cache, o.Deferrer, o.PaymentDelay))

		s.GET("/savings", GetSavingsHandler(o.Store))
		s.POST("/savings/deposit", SavingsDepositHandler(o.Store, o.Cache))
		s.POST("/savings/withdraw", SavingsWithdrawHandler(o.Store, o.Cache))
		s.GET("/goals", ListGoalsHandler(o.Store))
		s.POST("/goals", CreateGoalHandler(o.Store))

		s.GET("/chat", GetChatHandler(o.Store))
		s.POST("/chat", SendChatHandler(o.Store, o.Bot, o.Deferrer))

		s.GET("/transactions", TransactionsHandler(o.Store))
	}

	parent := s.Group("/parent")
	parent.Use(middleware.ParentViewMiddleware())
	{
		parent.POST("/topup", TopUpHandler(o.Store, o.Cache))
		parent.GET("/quick-add", QuickAddOptionsHandler(o.Store))
		parent.POST("/quick-add", QuickAddHandler(o.Store, o.Cache))
		parent.GET("/summary", SummaryHandler(o.Store, o.Cache))
		parent.GET("/transactions", TransactionsHandler(o.Store))
	}

	return r
}
