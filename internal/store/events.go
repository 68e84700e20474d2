package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/sagara/kotoba/ent"
	"github.com/sagara/kotoba/ent/reviewevent"
	entschema "github.com/sagara/kotoba/ent/schema"
)

// ReviewEventData captures a single graded answer for the event log.
type ReviewEventData struct {
	SessionID      string
	UserID         string
	ItemID         string
	ItemType       string
	Correct        bool
	HintsUsed      int
	TimeSpentMs    int64
	StrengthBefore int
	StrengthAfter  int
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID      string
	UserID         string
	Action         string // "start", "complete" or "abandon"
	ItemsServed    int
	CorrectAnswers int
	DurationSecs   int
	QueueSummary   []QueueEntrySummary
	FailedItemIDs  []string
}

// QueueEntrySummary mirrors a queue entry for persistence.
type QueueEntrySummary struct {
	ItemID   string
	ItemType string
	New      bool
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendReview records a graded answer.
	AppendReview(ctx context.Context, data ReviewEventData) error

	// AppendSession records a session start/complete/abandon.
	AppendSession(ctx context.Context, data SessionEventData) error

	// ReviewsOn counts review events for the user on the given UTC
	// calendar day. Used to enforce the daily review cap.
	ReviewsOn(ctx context.Context, userID string, day time.Time) (int, error)
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return &StorageError{Op: "append review event", UserID: data.UserID, ItemID: data.ItemID, Err: err}
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetItemID(data.ItemID).
		SetItemType(data.ItemType).
		SetCorrect(data.Correct).
		SetHintsUsed(data.HintsUsed).
		SetTimeSpentMs(data.TimeSpentMs).
		SetStrengthBefore(data.StrengthBefore).
		SetStrengthAfter(data.StrengthAfter).
		Save(ctx)
	if err != nil {
		return &StorageError{Op: "append review event", UserID: data.UserID, ItemID: data.ItemID, Err: err}
	}
	return nil
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return &StorageError{Op: "append session event", UserID: data.UserID, Err: err}
	}

	var summary []entschema.QueueEntrySummary
	for _, e := range data.QueueSummary {
		summary = append(summary, entschema.QueueEntrySummary{
			ItemID:   e.ItemID,
			ItemType: e.ItemType,
			New:      e.New,
		})
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetAction(data.Action).
		SetItemsServed(data.ItemsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs)

	if len(summary) > 0 {
		builder = builder.SetQueueSummary(summary)
	}
	if len(data.FailedItemIDs) > 0 {
		builder = builder.SetFailedItemIds(data.FailedItemIDs)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return &StorageError{Op: "append session event", UserID: data.UserID, Err: err}
	}
	return nil
}

func (r *eventRepo) ReviewsOn(ctx context.Context, userID string, day time.Time) (int, error) {
	y, m, d := day.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	n, err := r.client.ReviewEvent.Query().
		Where(
			reviewevent.UserID(userID),
			reviewevent.TimestampGTE(start),
			reviewevent.TimestampLT(end),
		).
		Count(ctx)
	if err != nil {
		return 0, &StorageError{Op: "count reviews", UserID: userID, Err: err}
	}
	return n, nil
}

// sequenceCounter manages the global monotonic sequence number shared
// across all event types. Each event type lives in its own ent-managed
// table, so per-table auto-increment IDs can't establish cross-type
// ordering; this shared counter assigns a single increasing sequence to
// every event regardless of type.
//
// Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the
// RETURNING clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
