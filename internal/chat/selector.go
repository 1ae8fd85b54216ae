// Package chat maps free text to canned financial-literacy replies.
//
// Selection is a pure function of the text except when no keyword group
// matches: then one of DefaultReplies is picked uniformly at random from the
// injected Source. Tests should assert membership in DefaultReplies for
// unmatched input, or inject a fixed Source.
package chat

import (
	"math/rand/v2"
	"strings"
	"time"
)

// Source picks a uniform integer in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Selector chooses a reply for a user message
type Selector struct {
	src Source
}

// NewSelector returns a selector drawing defaults from src, or from the
// global generator when src is nil.
func NewSelector(src Source) *Selector {
	if src == nil {
		src = globalSource{}
	}
	return &Selector{src: src}
}

// Match returns the first keyword group contained in text.
func Match(text string) (Topic, bool) {
	r, ok := match(text)
	return r.topic, ok
}

func match(text string) (rule, bool) {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r, true
			}
		}
	}
	return rule{}, false
}

// Reply returns the canned response for text.
func (s *Selector) Reply(text string) string {
	if r, ok := match(text); ok {
		return r.reply
	}
	return DefaultReplies[s.src.IntN(len(DefaultReplies))]
}

// Bot pairs a Selector with the simulated typing delay
type Bot struct {
	*Selector
	src      Source
	minDelay time.Duration
	maxDelay time.Duration
}

// NewBot returns a bot whose reply delay is drawn from [minDelay, maxDelay).
func NewBot(src Source, minDelay, maxDelay time.Duration) *Bot {
	if src == nil {
		src = globalSource{}
	}
	return &Bot{Selector: NewSelector(src), src: src, minDelay: minDelay, maxDelay: maxDelay}
}

// Delay returns how long the bot "types" before replying.
func (b *Bot) Delay() time.Duration {
	span := b.maxDelay - b.minDelay
	if span <= 0 {
		return b.minDelay
	}
	// millisecond resolution keeps the draw within int range
	ms := int(span / time.Millisecond)
	if ms <= 0 {
		return b.minDelay
	}
	return b.minDelay + time.Duration(b.src.IntN(ms))*time.Millisecond
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }
