package middleware

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyRateLimiter_EvictsIdleKeys(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	l := NewKeyRateLimiter(1, 1)
	l.now = func() time.Time { return now }

	for i := 0; i < limiterSweepSize; i++ {
		l.GetLimiter(strconv.Itoa(i))
	}
	same := l.GetLimiter("0")
	assert.Equal(t, limiterSweepSize, l.size())

	now = now.Add(limiterIdleTTL + time.Second)
	l.GetLimiter("fresh")
	assert.Equal(t, 1, l.size())
	assert.NotSame(t, same, l.GetLimiter("0"))
}
