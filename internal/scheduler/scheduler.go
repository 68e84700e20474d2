// Package scheduler builds deterministic review queues: which items a
// learner studies next, in what order, and how the configured category
// mix is honored when some categories run dry.
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sagara/kotoba/internal/catalog"
	"github.com/sagara/kotoba/internal/strength"
)

// RecordSource provides the learned-item records the scheduler draws from.
type RecordSource interface {
	// DueRecords returns all records due at asOf (nextReview passed, or
	// never reviewed). Ordering is unspecified; the scheduler imposes it.
	DueRecords(ctx context.Context, userID string, asOf time.Time) ([]strength.Record, error)

	// KnownItemIDs returns the set of item ids the user has a record for.
	KnownItemIDs(ctx context.Context, userID string) (map[string]bool, error)
}

// ReviewCounter reports how many reviews a user has already done on a
// given calendar day, for enforcing the daily cap.
type ReviewCounter interface {
	ReviewsOn(ctx context.Context, userID string, day time.Time) (int, error)
}

// Entry is one slot in a built queue.
type Entry struct {
	ItemID   string
	ItemType catalog.ItemType
	// New marks a never-reviewed item appended to fill spare capacity.
	New bool
}

// Config tunes queue construction.
type Config struct {
	// MaxReviewsPerDay caps total reviews per calendar day. New items are
	// only appended while the cap has not been reached.
	MaxReviewsPerDay int
}

// DefaultConfig returns the product defaults.
func DefaultConfig() Config {
	return Config{MaxReviewsPerDay: 100}
}

// Scheduler builds review queues from the record store and the catalog.
// It is stateless and safe for concurrent use across users.
type Scheduler struct {
	records RecordSource
	reviews ReviewCounter
	catalog catalog.Provider
	cfg     Config
}

// New creates a scheduler.
func New(records RecordSource, reviews ReviewCounter, cat catalog.Provider, cfg Config) *Scheduler {
	return &Scheduler{records: records, reviews: reviews, catalog: cat, cfg: cfg}
}

// BuildQueue returns the ordered review queue for a session of up to
// maxItems entries. The queue is deterministic for identical inputs:
// same asOf, same mix, same store state.
//
// Due items are partitioned by category, ordered oldest-due first
// (ties: lowest strength, then item id), and allocated slots per the mix
// with proportional shortfall redistribution. If fewer than maxItems due
// items exist and the daily cap allows, never-reviewed catalog items are
// appended; categories the mix weights at zero are excluded from that
// padding too.
func (s *Scheduler) BuildQueue(ctx context.Context, userID string, maxItems int, mix Mix, asOf time.Time) ([]Entry, error) {
	if maxItems <= 0 {
		return nil, &strength.InvalidInputError{Field: "maxItems", Reason: "must be positive"}
	}
	if err := mix.Validate(); err != nil {
		return nil, err
	}

	due, err := s.records.DueRecords(ctx, userID, asOf)
	if err != nil {
		return nil, fmt.Errorf("load due records: %w", err)
	}

	byType := make(map[catalog.ItemType][]strength.Record)
	for _, r := range due {
		byType[r.ItemType] = append(byType[r.ItemType], r)
	}
	counts := make(map[catalog.ItemType]int, len(byType))
	for t, recs := range byType {
		sortRecords(recs)
		counts[t] = len(recs)
	}

	alloc := Allocate(mix, maxItems, counts)

	var queue []Entry
	for _, t := range catalog.ItemTypes {
		for _, r := range byType[t][:alloc[t]] {
			queue = append(queue, Entry{ItemID: r.ItemID, ItemType: t})
		}
	}

	if len(queue) < maxItems {
		fresh, err := s.newItems(ctx, userID, mix, asOf, maxItems-len(queue), len(queue))
		if err != nil {
			return nil, err
		}
		queue = append(queue, fresh...)
	}

	return queue, nil
}

// newItems selects up to want never-reviewed catalog items from the
// categories the mix includes, respecting the remaining daily review
// capacity.
func (s *Scheduler) newItems(ctx context.Context, userID string, mix Mix, asOf time.Time, want, queued int) ([]Entry, error) {
	done, err := s.reviews.ReviewsOn(ctx, userID, asOf)
	if err != nil {
		return nil, fmt.Errorf("count reviews today: %w", err)
	}
	capacity := s.cfg.MaxReviewsPerDay - done - queued
	if capacity < want {
		want = capacity
	}
	if want <= 0 {
		return nil, nil
	}

	known, err := s.records.KnownItemIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load known items: %w", err)
	}

	var fresh []Entry
	for _, t := range catalog.ItemTypes {
		if mix.weight(t) == 0 {
			continue
		}
		for _, it := range s.catalog.ByType(t) {
			if known[it.ID] {
				continue
			}
			fresh = append(fresh, Entry{ItemID: it.ID, ItemType: t, New: true})
			if len(fresh) == want {
				return fresh, nil
			}
		}
	}
	return fresh, nil
}

// sortRecords orders a category's due records oldest-due first, with
// lowest strength then item id as tie-breakers for determinism.
func sortRecords(recs []strength.Record) {
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.NextReview.Equal(b.NextReview) {
			return a.NextReview.Before(b.NextReview)
		}
		if a.Strength != b.Strength {
			return a.Strength < b.Strength
		}
		return a.ItemID < b.ItemID
	})
}
