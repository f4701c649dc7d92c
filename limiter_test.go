package solestore

import (
	"testing"
	"time"
)

func TestLoginLimiterBlocksAfterMax(t *testing.T) {
	l := NewLoginLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("fourth attempt should be blocked")
	}
}

func TestLoginLimiterResetsAfterWindow(t *testing.T) {
	l := NewLoginLimiter(2, 50*time.Millisecond)

	l.Allow("10.0.0.1")
	l.Allow("10.0.0.1")
	if l.Allow("10.0.0.1") {
		t.Fatal("should be blocked at the limit")
	}

	time.Sleep(60 * time.Millisecond)
	if !l.Allow("10.0.0.1") {
		t.Fatal("should be allowed again after the window passes")
	}
}

func TestLoginLimiterIsPerIP(t *testing.T) {
	l := NewLoginLimiter(1, time.Minute)

	if !l.Allow("10.0.0.1") {
		t.Fatal("first IP should be allowed")
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("first IP should now be blocked")
	}
	if !l.Allow("10.0.0.2") {
		t.Fatal("second IP should be unaffected")
	}
}
