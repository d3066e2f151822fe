package testkit

import (
	"testing"
	"time"
)

var groqTimeout = 30 * time.Second

func TestSwap(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &groqTimeout, time.Millisecond)
		if groqTimeout != time.Millisecond {
			t.Fatalf("groqTimeout = %v, want 1ms", groqTimeout)
		}
	})
	if groqTimeout != 30*time.Second {
		t.Fatalf("groqTimeout = %v after cleanup, want 30s", groqTimeout)
	}
}

func TestSerial(t *testing.T) {
	t.Run("first", func(t *testing.T) { Serial(t) })
	// the lock is free again once the subtest's cleanup ran
	done := make(chan struct{})
	go func() {
		seamMu.Lock()
		seamMu.Unlock()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Serial did not release its lock")
	}
}

func TestMustPanic(t *testing.T) {
	if v := MustPanic(t, func() { panic("no chat id") }); v != "no chat id" {
		t.Fatalf("MustPanic = %v, want the panic value", v)
	}
}
