package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_EmptyByDefault(t *testing.T) {
	s := NewSlot(time.Second)
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestSlot_SetAndExpire(t *testing.T) {
	s := NewSlot(30 * time.Millisecond)
	s.Info("a new blog added")

	n, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, Notification{Message: "a new blog added", Kind: Info}, n)

	assert.Eventually(t, func() bool {
		_, ok := s.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestSlot_ReplaceRestartsTimer(t *testing.T) {
	s := NewSlot(80 * time.Millisecond)
	s.Info("first")
	time.Sleep(50 * time.Millisecond)
	s.Error("wrong username or password")

	// the first timer would have fired by now
	time.Sleep(50 * time.Millisecond)
	n, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "wrong username or password", n.Message)
	assert.Equal(t, Error, n.Kind)

	assert.Eventually(t, func() bool {
		_, ok := s.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestSlot_StaleExpireIgnored(t *testing.T) {
	s := NewSlot(time.Hour)
	s.Info("first")
	s.mu.Lock()
	stale := s.gen
	s.mu.Unlock()

	s.Info("second")
	s.expire(stale)

	n, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "second", n.Message)
}

func TestSlot_Stop(t *testing.T) {
	s := NewSlot(time.Hour)
	s.Error("boom")
	s.Stop()

	_, ok := s.Current()
	assert.False(t, ok)
	s.Stop()
}

func TestSlot_ConcurrentSet(t *testing.T) {
	s := NewSlot(time.Millisecond)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Info("x")
			_, _ = s.Current()
		}()
	}
	wg.Wait()
	s.Stop()
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "error", Error.String())
}
