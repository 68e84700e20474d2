package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/sagara/kotoba/internal/strength"
)

// StorageError indicates the underlying persistence failed. It carries
// enough context (user, item, operation) for the caller to retry or
// surface the failure; it is never a bare string.
type StorageError struct {
	Op     string
	UserID string
	ItemID string
	Err    error
}

func (e *StorageError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("storage: %s (user %s, item %s): %v", e.Op, e.UserID, e.ItemID, e.Err)
	}
	return fmt.Sprintf("storage: %s (user %s): %v", e.Op, e.UserID, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// RetryConfig configures retry behavior for transient storage failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns the store defaults: 3 attempts with short
// exponential backoff.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 50 * time.Millisecond,
		MaxWait:     time.Second,
		Multiplier:  2.0,
	}
}

// retryingRecordRepo is a decorator that retries transient write
// failures with exponential backoff and jitter. Reads pass through.
type retryingRecordRepo struct {
	RecordRepo
	config RetryConfig
}

// WithRetry wraps a RecordRepo with bounded write retry.
func WithRetry(repo RecordRepo, cfg RetryConfig) RecordRepo {
	return &retryingRecordRepo{RecordRepo: repo, config: cfg}
}

func (r *retryingRecordRepo) Put(ctx context.Context, rec strength.Record) error {
	var lastErr error
	for attempt := range r.config.MaxAttempts {
		err := r.RecordRepo.Put(ctx, rec)
		if err == nil {
			return nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}
	return lastErr
}

// shouldRetry reports whether an error is worth retrying. Context errors
// and invalid input are not; storage failures are treated as transient.
func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var invalid *strength.InvalidInputError
	return !errors.As(err, &invalid)
}

// backoff computes the wait duration for the given attempt.
func (r *retryingRecordRepo) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
