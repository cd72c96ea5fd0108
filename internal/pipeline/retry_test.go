package pipeline

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dgallion1/designdoc/internal/analyze"
)

func TestIsRetryable(t *testing.T) {
	retryable := &analyze.RetryableError{StatusCode: 429, Message: "rate limited"}
	if !IsRetryable(retryable) {
		t.Error("expected RetryableError to be retryable")
	}
	if !IsRetryable(fmt.Errorf("wrapped: %w", retryable)) {
		t.Error("expected wrapped RetryableError to be retryable")
	}
	if IsRetryable(errors.New("plain error")) {
		t.Error("plain errors must not be retryable")
	}
	if IsRetryable(nil) {
		t.Error("nil must not be retryable")
	}
}

func TestBackoff_GrowsAndCaps(t *testing.T) {
	for attempt := 0; attempt < 8; attempt++ {
		d := Backoff(attempt)
		if d < time.Second {
			t.Errorf("attempt %d: backoff %v below base", attempt, d)
		}
		if d > 45*time.Second {
			t.Errorf("attempt %d: backoff %v above cap+jitter", attempt, d)
		}
	}
	if Backoff(0) > 2*time.Second {
		t.Errorf("first backoff too large: %v", Backoff(0))
	}
}
