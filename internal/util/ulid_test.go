package util

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	id := NewULID()
	assert.Len(t, id, 26)
	assert.True(t, IsULID(id))
	assert.False(t, IsULID("not-a-ulid"))
}

func TestNewULIDAt_MonotonicWithinMillisecond(t *testing.T) {
	now := time.Now()
	prev := NewULIDAt(now)
	for i := 0; i < 100; i++ {
		next := NewULIDAt(now)
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestNewULID_Concurrent(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[string]struct{})
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := NewULID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 400)
}
