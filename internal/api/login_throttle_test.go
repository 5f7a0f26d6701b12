package api

import (
	"testing"
	"time"
)

func TestLoginThrottleBlocksAtLimit(t *testing.T) {
	throttle := newLoginThrottle(3, time.Minute)
	now := time.Now()

	throttle.recordFailure("10.0.0.1", now)
	throttle.recordFailure("10.0.0.1", now)
	if throttle.blocked("10.0.0.1", now) {
		t.Fatal("expected key below the limit to pass")
	}

	throttle.recordFailure("10.0.0.1", now)
	if !throttle.blocked("10.0.0.1", now) {
		t.Fatal("expected key at the limit to be blocked")
	}
	if throttle.blocked("10.0.0.2", now) {
		t.Fatal("expected other keys to be unaffected")
	}
}

func TestLoginThrottleExpiresOldFailures(t *testing.T) {
	throttle := newLoginThrottle(2, time.Minute)
	start := time.Now()

	throttle.recordFailure("10.0.0.1", start)
	throttle.recordFailure("10.0.0.1", start.Add(30*time.Second))
	if !throttle.blocked("10.0.0.1", start.Add(45*time.Second)) {
		t.Fatal("expected block inside the window")
	}
	if throttle.blocked("10.0.0.1", start.Add(61*time.Second)) {
		t.Fatal("expected the oldest failure to fall out of the window")
	}

	// Only the failure from 30s in is still counted; one more failure
	// reaches the limit again.
	throttle.recordFailure("10.0.0.1", start.Add(70*time.Second))
	if !throttle.blocked("10.0.0.1", start.Add(70*time.Second)) {
		t.Fatal("expected a fresh failure to count against the remainder")
	}
}

func TestLoginThrottleForgetClearsKey(t *testing.T) {
	throttle := newLoginThrottle(1, time.Minute)
	now := time.Now()

	throttle.recordFailure("10.0.0.1", now)
	if !throttle.blocked("10.0.0.1", now) {
		t.Fatal("expected blocked key")
	}

	throttle.forget("10.0.0.1")
	if throttle.blocked("10.0.0.1", now) {
		t.Fatal("expected forgotten key to pass")
	}
}
