package main

import (
	"sync"
	"testing"

	"triforce/common"

	"github.com/stretchr/testify/assert"
)

func TestKeyTrackerHeldState(t *testing.T) {
	keys := newKeyTracker()

	assert.False(t, keys.isHeld(common.KeyW))

	keys.set(common.KeyW, true)
	assert.True(t, keys.isHeld(common.KeyW))

	keys.set(common.KeyW, false)
	assert.False(t, keys.isHeld(common.KeyW))
}

func TestKeyTrackerConcurrentAccess(t *testing.T) {
	keys := newKeyTracker()

	// Writer mimics the GLFW callback thread, reader mimics the tick goroutine.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			keys.set(common.KeyW, i%2 == 0)
			keys.set(common.KeyLeft, i%2 != 0)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = keys.isHeld(common.KeyW)
			_ = keys.isHeld(common.KeyLeft)
		}
	}()
	wg.Wait()

	keys.set(common.KeyW, true)
	assert.True(t, keys.isHeld(common.KeyW))
}
