package llmclient

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetrierRetriesRetryableKindsThenSucceeds(t *testing.T) {
	const initialDelay = 10 * time.Millisecond
	r := NewRetrier(3, initialDelay)

	failures := 2
	calls := 0
	start := time.Now()
	err := r.Do(context.Background(), func() error {
		calls++
		if calls <= failures {
			return &CallError{Kind: KindNetwork, Err: errors.New("connection refused")}
		}
		return nil
	})
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if calls != failures+1 {
		t.Fatalf("expected %d calls, got %d", failures+1, calls)
	}
	// delays: initialDelay * 2^0 + initialDelay * 2^1
	minElapsed := initialDelay + 2*initialDelay
	if elapsed < minElapsed {
		t.Fatalf("expected elapsed >= %s, got %s", minElapsed, elapsed)
	}
}

func TestRetrierValidationFailsImmediately(t *testing.T) {
	r := NewRetrier(3, 50*time.Millisecond)

	calls := 0
	start := time.Now()
	err := r.Do(context.Background(), func() error {
		calls++
		return &CallError{Kind: KindValidation, Status: 400, Body: "bad request"}
	})
	elapsed := time.Since(start)

	if err == nil {
		t.Fatalf("expected error to propagate")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one call, got %d", calls)
	}
	if elapsed >= 50*time.Millisecond {
		t.Fatalf("expected no backoff delay, elapsed %s", elapsed)
	}
	if Classify(err) != KindValidation {
		t.Fatalf("expected validation kind, got %s", Classify(err))
	}
}

func TestRetrierExhaustionReturnsLastError(t *testing.T) {
	r := NewRetrier(2, time.Millisecond)

	calls := 0
	err := r.Do(context.Background(), func() error {
		calls++
		return &CallError{Kind: KindServer, Status: 503}
	})

	if err == nil {
		t.Fatalf("expected error after exhausting retries")
	}
	// initial attempt + 2 retries
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	var callErr *CallError
	if !errors.As(err, &callErr) || callErr.Status != 503 {
		t.Fatalf("expected last CallError to propagate, got %v", err)
	}
}

func TestRetrierStopsOnContextCancel(t *testing.T) {
	r := NewRetrier(5, 30*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	calls := 0
	err := r.Do(ctx, func() error {
		calls++
		return &CallError{Kind: KindNetwork}
	})

	if err == nil {
		t.Fatalf("expected error when context expires")
	}
	if calls > 2 {
		t.Fatalf("expected retries to stop with context, got %d calls", calls)
	}
}
