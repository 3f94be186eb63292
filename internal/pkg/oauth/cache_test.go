package oauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	current time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.current
}

func (f *fakeClock) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}

func TestUserInfoCache_HitWithinExpiry(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewUserInfoCache(clock.Now)

	info := GoogleInformation{GoogleID: "g-1", Email: "a@example.com", VerifiedEmail: true}
	cache.Put("token-a", info, clock.Now().Add(time.Hour))

	got, ok := cache.Get("token-a")
	assert.True(t, ok)
	assert.Equal(t, info, got)

	clock.Advance(4 * time.Minute)
	_, ok = cache.Get("token-a")
	assert.True(t, ok)
}

func TestUserInfoCache_ExpiresAtTTLCap(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewUserInfoCache(clock.Now)

	// Token lives an hour but the cache caps entries at 5 minutes.
	cache.Put("token-a", GoogleInformation{GoogleID: "g-1"}, clock.Now().Add(time.Hour))

	clock.Advance(5 * time.Minute)
	_, ok := cache.Get("token-a")
	assert.False(t, ok)
}

func TestUserInfoCache_ExpiresWithShortLivedToken(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewUserInfoCache(clock.Now)

	cache.Put("token-a", GoogleInformation{GoogleID: "g-1"}, clock.Now().Add(time.Minute))

	clock.Advance(2 * time.Minute)
	_, ok := cache.Get("token-a")
	assert.False(t, ok)
}

func TestUserInfoCache_MissForUnknownToken(t *testing.T) {
	t.Parallel()

	cache := NewUserInfoCache(time.Now)
	_, ok := cache.Get("nope")
	assert.False(t, ok)
}
