package goroutine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/orris-inc/statsboard/internal/shared/logger"
)

func TestSafeGo_RunsFn(t *testing.T) {
	ran := false
	done := SafeGo(logger.NewNop(), "test", func() { ran = true })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not finish")
	}
	assert.True(t, ran)
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	done := SafeGo(logger.NewNop(), "panicky", func() { panic("boom") })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("panicking goroutine did not finish")
	}
}
