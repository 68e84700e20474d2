// Package session orchestrates a study session end to end: it pulls the
// due queue from the scheduler, grades answers against the catalog,
// applies the strength model, and on completion persists records and
// folds the session into the user's statistics. It is the only package
// with side effects across the others.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sagara/kotoba/internal/catalog"
	"github.com/sagara/kotoba/internal/progress"
	"github.com/sagara/kotoba/internal/scheduler"
	"github.com/sagara/kotoba/internal/store"
	"github.com/sagara/kotoba/internal/strength"
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusInProgress
	StatusCompleted
	StatusAbandoned
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusInProgress:
		return "in-progress"
	case StatusCompleted:
		return "completed"
	case StatusAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// Session is one study session. All mutation goes through the
// Coordinator; callers read the exported fields only.
type Session struct {
	ID        string
	UserID    string
	Queue     []scheduler.Entry
	StartedAt time.Time

	mu        sync.Mutex
	status    Status
	remaining map[string]scheduler.Entry
	// pending holds updated records awaiting persistence at Complete.
	pending map[string]strength.Record
	events  []progress.Event
	correct int
}

// Status returns the session's lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Remaining returns how many queue items have not been answered yet.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.remaining)
}

// Result is the feedback for a single submitted answer.
type Result struct {
	Correct        bool
	StrengthBefore int
	StrengthAfter  int
	NextReview     time.Time
	// NewlyMastered is true when this answer pushed the item over the
	// mastery threshold for the first time.
	NewlyMastered bool
}

// Options wires the coordinator's collaborators.
type Options struct {
	Records   store.RecordRepo
	Events    store.EventRepo
	Stats     store.StatsRepo
	Scheduler *scheduler.Scheduler
	Catalog   catalog.Provider
	Model     strength.Model
	Agg       progress.Aggregator
	Mix       scheduler.Mix

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Coordinator runs study sessions. It enforces at most one in-progress
// session per user; the pure collaborators (scheduler, strength model,
// aggregator) may serve many users concurrently.
type Coordinator struct {
	records store.RecordRepo
	events  store.EventRepo
	stats   store.StatsRepo
	sched   *scheduler.Scheduler
	catalog catalog.Provider
	model   strength.Model
	agg     progress.Aggregator
	mix     scheduler.Mix
	now     func() time.Time

	mu     sync.Mutex
	active map[string]*Session
}

// snapshotsKept is how many stats snapshots are retained per user.
const snapshotsKept = 30

// NewCoordinator creates a coordinator.
func NewCoordinator(opts Options) *Coordinator {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Coordinator{
		records: opts.Records,
		events:  opts.Events,
		stats:   opts.Stats,
		sched:   opts.Scheduler,
		catalog: opts.Catalog,
		model:   opts.Model,
		agg:     opts.Agg,
		mix:     opts.Mix,
		now:     now,
		active:  make(map[string]*Session),
	}
}

// Start begins a session of up to maxItems entries. It fails with
// *AlreadyActiveError if the user has an in-progress session and with
// *EmptyQueueError if nothing is due and no new items remain.
func (c *Coordinator) Start(ctx context.Context, userID string, maxItems int) (*Session, error) {
	c.mu.Lock()
	if existing, ok := c.active[userID]; ok {
		c.mu.Unlock()
		return nil, &AlreadyActiveError{UserID: userID, SessionID: existing.ID}
	}
	c.mu.Unlock()

	now := c.now()
	queue, err := c.sched.BuildQueue(ctx, userID, maxItems, c.mix, now)
	if err != nil {
		return nil, fmt.Errorf("build queue: %w", err)
	}
	if len(queue) == 0 {
		return nil, &EmptyQueueError{UserID: userID}
	}

	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Queue:     queue,
		StartedAt: now,
		status:    StatusInProgress,
		remaining: make(map[string]scheduler.Entry, len(queue)),
		pending:   make(map[string]strength.Record),
	}
	for _, e := range queue {
		sess.remaining[e.ItemID] = e
	}

	c.mu.Lock()
	// Re-check under the lock; a concurrent Start may have won.
	if existing, ok := c.active[userID]; ok {
		c.mu.Unlock()
		return nil, &AlreadyActiveError{UserID: userID, SessionID: existing.ID}
	}
	c.active[userID] = sess
	c.mu.Unlock()

	if err := c.events.AppendSession(ctx, store.SessionEventData{
		SessionID:    sess.ID,
		UserID:       userID,
		Action:       "start",
		QueueSummary: queueSummary(queue),
	}); err != nil {
		c.drop(userID)
		return nil, fmt.Errorf("record session start: %w", err)
	}

	return sess, nil
}

// SubmitAnswer grades the answer for itemID, applies the strength model
// in memory, and logs the review event. Record persistence is deferred
// to Complete. Requires an in-progress session.
func (c *Coordinator) SubmitAnswer(ctx context.Context, userID, itemID, answer string, hintsUsed int, timeSpent time.Duration) (*Result, error) {
	sess, err := c.inProgress(userID, "submit answer")
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.status != StatusInProgress {
		return nil, &InvalidStateError{UserID: userID, Op: "submit answer", Status: sess.status}
	}

	if _, ok := sess.remaining[itemID]; !ok {
		return nil, &strength.InvalidInputError{Field: "itemId", Reason: fmt.Sprintf("%s is not pending in the session queue", itemID)}
	}
	item, ok := c.catalog.Item(itemID)
	if !ok {
		return nil, &strength.InvalidInputError{Field: "itemId", Reason: fmt.Sprintf("%s is not in the catalog", itemID)}
	}

	rec, ok := sess.pending[itemID]
	if !ok {
		rec, err = c.records.Get(ctx, userID, itemID)
		if err != nil {
			return nil, err
		}
		if rec.TotalAttempts() == 0 && rec.ItemType == "" {
			rec = strength.NewRecord(userID, item)
		}
	}

	now := c.now()
	outcome := strength.Outcome{
		Correct:   item.Accepts(answer),
		HintsUsed: hintsUsed,
		TimeSpent: timeSpent,
	}
	updated, err := c.model.Apply(rec, outcome, now)
	if err != nil {
		return nil, err
	}

	delete(sess.remaining, itemID)
	sess.pending[itemID] = updated
	if outcome.Correct {
		sess.correct++
	}
	sess.events = append(sess.events, progress.Event{
		ItemID:         itemID,
		ItemType:       item.Type,
		Script:         item.Script,
		Correct:        outcome.Correct,
		HintsUsed:      hintsUsed,
		TimeSpent:      timeSpent,
		StrengthBefore: rec.Strength,
		StrengthAfter:  updated.Strength,
		Timestamp:      now,
	})

	if err := c.events.AppendReview(ctx, store.ReviewEventData{
		SessionID:      sess.ID,
		UserID:         userID,
		ItemID:         itemID,
		ItemType:       string(item.Type),
		Correct:        outcome.Correct,
		HintsUsed:      hintsUsed,
		TimeSpentMs:    timeSpent.Milliseconds(),
		StrengthBefore: rec.Strength,
		StrengthAfter:  updated.Strength,
	}); err != nil {
		return nil, fmt.Errorf("record review event: %w", err)
	}

	return &Result{
		Correct:        outcome.Correct,
		StrengthBefore: rec.Strength,
		StrengthAfter:  updated.Strength,
		NextReview:     updated.NextReview,
		NewlyMastered:  !c.model.Mastered(rec.Strength) && c.model.Mastered(updated.Strength),
	}, nil
}

// Complete persists the session's updated records, folds the session
// into the user's statistics, and returns them. Records that fail to
// save after retries are excluded from aggregation and reported via
// *PartialPersistError; the session still transitions to Completed.
func (c *Coordinator) Complete(ctx context.Context, userID string) (progress.Stats, progress.Goal, error) {
	sess, err := c.inProgress(userID, "complete")
	if err != nil {
		return progress.Stats{}, progress.Goal{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.status != StatusInProgress {
		return progress.Stats{}, progress.Goal{}, &InvalidStateError{UserID: userID, Op: "complete", Status: sess.status}
	}

	// Persist records; Put already retries with backoff, so a failure
	// here is final for this call.
	var failed []string
	var persistErr error
	for _, e := range sess.Queue {
		rec, ok := sess.pending[e.ItemID]
		if !ok {
			continue // unanswered
		}
		if err := c.records.Put(ctx, rec); err != nil {
			failed = append(failed, e.ItemID)
			persistErr = errors.Join(persistErr, err)
		}
	}
	failedSet := make(map[string]bool, len(failed))
	for _, id := range failed {
		failedSet[id] = true
	}

	// Aggregate only the events whose records were saved, so a later
	// manual retry cannot double-apply them.
	summary := progress.Summary{SessionID: sess.ID, UserID: userID}
	for _, ev := range sess.events {
		if !failedSet[ev.ItemID] {
			summary.Events = append(summary.Events, ev)
		}
	}

	now := c.now()
	if err := c.events.AppendSession(ctx, store.SessionEventData{
		SessionID:      sess.ID,
		UserID:         userID,
		Action:         "complete",
		ItemsServed:    len(sess.events),
		CorrectAnswers: sess.correct,
		DurationSecs:   int(now.Sub(sess.StartedAt) / time.Second),
		FailedItemIDs:  failed,
	}); err != nil {
		return progress.Stats{}, progress.Goal{}, err
	}

	// The stats write is the last fallible step: if anything before it
	// fails, the session stays InProgress and a retried Complete starts
	// from the unmodified snapshot instead of folding the session in
	// twice. Pruning runs before the save for the same reason.
	stats, goal, _, err := c.stats.Load(ctx, userID)
	if err != nil {
		return progress.Stats{}, progress.Goal{}, err
	}
	stats, goal, err = c.agg.ApplySession(stats, goal, summary, now)
	if err != nil {
		return progress.Stats{}, progress.Goal{}, fmt.Errorf("apply session: %w", err)
	}
	if err := c.stats.Prune(ctx, userID, snapshotsKept); err != nil {
		return progress.Stats{}, progress.Goal{}, err
	}
	if err := c.stats.Save(ctx, userID, stats, goal); err != nil {
		return progress.Stats{}, progress.Goal{}, err
	}

	sess.status = StatusCompleted
	c.drop(userID)

	if len(failed) > 0 {
		return stats, goal, &PartialPersistError{
			UserID:        userID,
			SessionID:     sess.ID,
			FailedItemIDs: failed,
			Err:           persistErr,
		}
	}
	return stats, goal, nil
}

// Abandon discards the session. Nothing beyond the already-appended
// review events is persisted; statistics are untouched.
func (c *Coordinator) Abandon(ctx context.Context, userID string) error {
	sess, err := c.inProgress(userID, "abandon")
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.status != StatusInProgress {
		return &InvalidStateError{UserID: userID, Op: "abandon", Status: sess.status}
	}

	now := c.now()
	if err := c.events.AppendSession(ctx, store.SessionEventData{
		SessionID:      sess.ID,
		UserID:         userID,
		Action:         "abandon",
		ItemsServed:    len(sess.events),
		CorrectAnswers: sess.correct,
		DurationSecs:   int(now.Sub(sess.StartedAt) / time.Second),
	}); err != nil {
		return err
	}

	sess.status = StatusAbandoned
	c.drop(userID)
	return nil
}

// Active returns the user's in-progress session, if any.
func (c *Coordinator) Active(userID string) (*Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.active[userID]
	return sess, ok
}

func (c *Coordinator) inProgress(userID, op string) (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.active[userID]
	if !ok {
		return nil, &InvalidStateError{UserID: userID, Op: op, Status: StatusIdle}
	}
	return sess, nil
}

func (c *Coordinator) drop(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.active, userID)
}

func queueSummary(queue []scheduler.Entry) []store.QueueEntrySummary {
	out := make([]store.QueueEntrySummary, len(queue))
	for i, e := range queue {
		out[i] = store.QueueEntrySummary{
			ItemID:   e.ItemID,
			ItemType: string(e.ItemType),
			New:      e.New,
		}
	}
	return out
}
