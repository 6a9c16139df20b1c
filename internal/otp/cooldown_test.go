package otp

import (
	"testing"
	"time"
)

func TestCooldown(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewCooldown(20 * time.Second)
	c.now = func() time.Time { return now }

	if c.Active() {
		t.Fatal("active before first Start")
	}

	c.Start()
	if !c.Active() {
		t.Fatal("not active right after Start")
	}
	if got := c.Remaining(); got != 20*time.Second {
		t.Fatalf("Remaining = %v", got)
	}

	now = now.Add(19*time.Second + 500*time.Millisecond)
	if !c.Active() {
		t.Fatal("expired early")
	}
	if got := c.Remaining(); got != time.Second {
		t.Fatalf("Remaining = %v, want 1s (rounded up for display)", got)
	}

	now = now.Add(time.Second)
	if c.Active() {
		t.Fatal("still active after the window")
	}
	if got := c.Remaining(); got != 0 {
		t.Fatalf("Remaining = %v, want 0", got)
	}
}

func TestCooldownRestart(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewCooldown(20 * time.Second)
	c.now = func() time.Time { return now }

	c.Start()
	now = now.Add(25 * time.Second)
	if c.Active() {
		t.Fatal("should have expired")
	}

	c.Start()
	if !c.Active() {
		t.Fatal("restart did not re-arm the window")
	}
}
