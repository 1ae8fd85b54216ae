package chat

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always picks the same index
type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func replyFor(t *testing.T, topic Topic) string {
	t.Helper()
	for _, r := range rules {
		if r.topic == topic {
			return r.reply
		}
	}
	t.Fatalf("no rule for %s", topic)
	return ""
}

func TestReplyMatchesSavingDeterministically(t *testing.T) {
	s := NewSelector(nil)
	want := replyFor(t, TopicSaving)
	for range 20 {
		assert.Equal(t, want, s.Reply("How do I start saving for a bike?"))
	}
}

func TestReplyUnmatchedIsADefault(t *testing.T) {
	s := NewSelector(rand.New(rand.NewPCG(1, 2)))
	for range 50 {
		assert.Contains(t, DefaultReplies, s.Reply("asdf"))
	}
}

func TestReplyDefaultUsesInjectedSource(t *testing.T) {
	for i := range DefaultReplies {
		s := NewSelector(fixedSource(i))
		assert.Equal(t, DefaultReplies[i], s.Reply("hello there"))
	}
}

func TestMatchPriorityAndCase(t *testing.T) {
	tests := []struct {
		text string
		want Topic
	}{
		{"Should I SAVE or INVEST?", TopicSaving},
		{"invest in a fixed deposit", TopicInterest},
		{"What is an FD?", TopicInterest},
		{"stock market", TopicInvesting},
		{"plan my week", TopicBudget},
		{"emergency!", TopicEmergency},
		{"can I borrow", TopicDebt},
		{"open a bank account", TopicBanking},
		{"my target for this month", TopicGoals},
		{"how to earn money", TopicEarning},
		{"budget for a loan", TopicBudget},
	}
	for _, tt := range tests {
		got, ok := Match(tt.text)
		require.True(t, ok, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}

	_, ok := Match("asdf")
	assert.False(t, ok)
}

func TestBotDelay(t *testing.T) {
	b := NewBot(fixedSource(500), time.Second, 3*time.Second)
	assert.Equal(t, 1500*time.Millisecond, b.Delay())

	r := NewBot(rand.New(rand.NewPCG(3, 4)), time.Second, 3*time.Second)
	for range 50 {
		d := r.Delay()
		assert.GreaterOrEqual(t, d, time.Second)
		assert.Less(t, d, 3*time.Second)
	}

	assert.Equal(t, time.Duration(0), NewBot(nil, 0, 0).Delay())
}
