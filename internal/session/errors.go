package session

import (
	"fmt"
	"strings"
)

// AlreadyActiveError indicates the user already has an in-progress
// session. The caller must complete or abandon it first.
type AlreadyActiveError struct {
	UserID    string
	SessionID string
}

func (e *AlreadyActiveError) Error() string {
	return fmt.Sprintf("session %s already active for user %s", e.SessionID, e.UserID)
}

// EmptyQueueError indicates no due or new items exist for the user.
// Recoverable: the caller may widen filters or wait.
type EmptyQueueError struct {
	UserID string
}

func (e *EmptyQueueError) Error() string {
	return fmt.Sprintf("no due or new items for user %s", e.UserID)
}

// InvalidStateError indicates an operation was called outside the
// session state that permits it. This is a caller bug.
type InvalidStateError struct {
	UserID string
	Op     string
	Status Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s for user %s: session is %s", e.Op, e.UserID, e.Status)
}

// PartialPersistError indicates some records could not be saved when the
// session completed, even after per-record retries. The named items'
// results were excluded from the aggregated statistics and can be
// retried manually; they were not silently dropped or double-applied.
type PartialPersistError struct {
	UserID        string
	SessionID     string
	FailedItemIDs []string
	Err           error
}

func (e *PartialPersistError) Error() string {
	return fmt.Sprintf("session %s for user %s: failed to persist records for items [%s]: %v",
		e.SessionID, e.UserID, strings.Join(e.FailedItemIDs, ", "), e.Err)
}

func (e *PartialPersistError) Unwrap() error { return e.Err }
