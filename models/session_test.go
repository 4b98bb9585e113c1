package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionExpired(t *testing.T) {
	now := time.Date(2025, 9, 12, 12, 0, 0, 0, time.UTC)

	live := Session{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, live.Expired(now))

	stale := Session{ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, stale.Expired(now))

	// a session expiring exactly now is no longer valid
	boundary := Session{ExpiresAt: now}
	assert.True(t, boundary.Expired(now))
}
