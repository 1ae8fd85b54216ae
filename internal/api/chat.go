package api

import (
	"context"  // Deferred reply context
	"net/http" // HTTP status codes
	"strings"  // Message trimming
	"time"     // Timestamps

	"moneywise/internal/chat"    // Response selector
	"moneywise/internal/domain"  // Session model
	"moneywise/internal/session" // Session store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Message IDs
	"github.com/sirupsen/logrus" // Logging library
)

const replyCommitTimeout = 5 * time.Second

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	Text string `json:"text"`
}

// GetChatHandler returns the transcript and the quick questions
func GetChatHandler(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := store.Get(c.Request.Context(), sessionID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"messages": s.Chat, "suggestions": chat.Suggestions})
	}
}

// SendChatHandler appends the user message right away and schedules the bot
// reply after the typing delay.
func SendChatHandler(store session.Store, bot *chat.Bot, deferrer session.Deferrer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		text := ""
		if err := c.ShouldBindJSON(&req); err == nil {
			text = strings.TrimSpace(req.Text)
		}
		if text == "" { // Whitespace only counts as empty
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty", "code": "empty_message"})
			return
		}

		id := sessionID(c)
		msg := domain.ChatMessage{ID: uuid.NewString(), Text: text, Sender: domain.SenderUser, Timestamp: time.Now()}
		if _, err := store.Update(c.Request.Context(), id, func(s *domain.Session) error {
			s.AppendChat(msg)
			return nil
		}); err != nil {
			respondError(c, err)
			return
		}

		// Bot "types" before answering; the request does not wait for it
		deferrer.After(bot.Delay(), func() {
			reply := domain.ChatMessage{ID: uuid.NewString(), Text: bot.Reply(text), Sender: domain.SenderBot, Timestamp: time.Now()}
			ctx, cancel := context.WithTimeout(context.Background(), replyCommitTimeout)
			defer cancel()
			if _, err := store.Update(ctx, id, func(s *domain.Session) error { // Session may have ended meanwhile
				s.AppendChat(reply)
				return nil
			}); err != nil {
				logrus.WithFields(logrus.Fields{
					"session_id": id,
					"error":      err.Error(),
				}).Warn("Chat reply dropped")
			}
		})

		c.JSON(http.StatusAccepted, gin.H{"message": msg})
	}
}
