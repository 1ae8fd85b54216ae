package api

import (
	"net/http" // HTTP status codes
	"time"     // Token lifetime

	"moneywise/internal/domain"     // View type
	"moneywise/internal/middleware" // Context keys
	"moneywise/internal/session"    // Session store
	"moneywise/internal/utils"      // Token helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ViewRequest selects the child or parent view
type ViewRequest struct {
	View domain.View `json:"view" binding:"required"`
}

// SessionResponse is returned whenever a token is issued
type SessionResponse struct {
	SessionID string      `json:"session_id"`
	Token     string      `json:"token"`
	View      domain.View `json:"view"`
}

func bindView(c *gin.Context) (domain.View, bool) {
	var req ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.View.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "View must be child or parent"})
		return "", false
	}
	return req.View, true
}

// StartSessionHandler creates a freshly seeded session and returns its token
func StartSessionHandler(store session.Store, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, ok := bindView(c)
		if !ok {
			return
		}
		s := session.New(time.Now()) // Fresh seeded state
		if err := store.Create(c.Request.Context(), s); err != nil {
			respondError(c, err)
			return
		}
		token, err := utils.GenerateSessionToken(s.ID, view, secret, ttl) // Generate session token
		if err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"session_id": s.ID,
			"view":       view,
		}).Info("Session started")
		c.JSON(http.StatusCreated, SessionResponse{SessionID: s.ID, Token: token, View: view})
	}
}

// SwitchViewHandler issues a token for the other view of the same session
func SwitchViewHandler(secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, ok := bindView(c)
		if !ok {
			return
		}
		id := sessionID(c)
		token, err := utils.GenerateSessionToken(id, view, secret, ttl)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, SessionResponse{SessionID: id, Token: token, View: view})
	}
}

// EndSessionHandler resets the simulator by deleting the session
func EndSessionHandler(store session.Store, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessionID(c)
		if err := store.Delete(c.Request.Context(), id); err != nil { // Ending resets the simulator
			respondError(c, err)
			return
		}
		invalidate(c, cache, id, sessionVersion(c))
		view, _ := c.Get(middleware.ViewKey)
		logrus.WithFields(logrus.Fields{
			"session_id": id,
			"view":       view,
		}).Info("Session ended")
		c.JSON(http.StatusOK, gin.H{"message": "Session ended"})
	}
}
