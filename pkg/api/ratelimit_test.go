package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlidingWindowLimiter(t *testing.T) {
	now := time.Unix(1000, 0)
	limiter := newSlidingWindowLimiter(5, time.Minute)
	limiter.now = func() time.Time { return now }

	t.Run("admits exactly the limit in one window", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("s1"), "request %d", i)
		}
		assert.False(t, limiter.Allow("s1"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		assert.True(t, limiter.Allow("s2"))
	})

	t.Run("a sliding window, not a fixed one", func(t *testing.T) {
		// 59 seconds later the original five still count.
		now = now.Add(59 * time.Second)
		assert.False(t, limiter.Allow("s1"))

		// Two seconds more and they have aged out.
		now = now.Add(2 * time.Second)
		assert.True(t, limiter.Allow("s1"))
	})

	t.Run("forget clears the history", func(t *testing.T) {
		limiter.Forget("s1")
		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("s1"))
		}
	})
}
