package store

import (
	"context"
	"time"

	"github.com/sagara/kotoba/ent"
	"github.com/sagara/kotoba/ent/learneditem"
	"github.com/sagara/kotoba/ent/predicate"
	"github.com/sagara/kotoba/internal/catalog"
	"github.com/sagara/kotoba/internal/strength"
)

// ItemFilter narrows record queries by category or script.
// A zero filter matches everything.
type ItemFilter struct {
	Types   []catalog.ItemType
	Scripts []catalog.Script
}

// RecordRepo is durable storage for learned-item records.
type RecordRepo interface {
	// Get returns the record for (userID, itemID), or the zero-state
	// record (strength 0, no counts, due immediately) if none exists.
	Get(ctx context.Context, userID, itemID string) (strength.Record, error)

	// Put upserts a record. Failures are reported as *StorageError.
	Put(ctx context.Context, rec strength.Record) error

	// Due returns all records due at asOf, optionally filtered.
	Due(ctx context.Context, userID string, filter ItemFilter, asOf time.Time) ([]strength.Record, error)

	// DueRecords is Due with no filter; it satisfies the scheduler's
	// RecordSource.
	DueRecords(ctx context.Context, userID string, asOf time.Time) ([]strength.Record, error)

	// KnownItemIDs returns the set of item ids the user has a record for.
	KnownItemIDs(ctx context.Context, userID string) (map[string]bool, error)
}

// recordRepo implements RecordRepo using the ent client.
type recordRepo struct {
	client *ent.Client
}

func (r *recordRepo) Get(ctx context.Context, userID, itemID string) (strength.Record, error) {
	li, err := r.client.LearnedItem.Query().
		Where(
			learneditem.UserID(userID),
			learneditem.ItemID(itemID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return strength.Record{UserID: userID, ItemID: itemID}, nil
		}
		return strength.Record{}, &StorageError{Op: "get record", UserID: userID, ItemID: itemID, Err: err}
	}
	return entToRecord(li), nil
}

func (r *recordRepo) Put(ctx context.Context, rec strength.Record) error {
	existing, err := r.client.LearnedItem.Query().
		Where(
			learneditem.UserID(rec.UserID),
			learneditem.ItemID(rec.ItemID),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetStrength(rec.Strength).
			SetNillableLastReviewed(rec.LastReviewed).
			SetNextReview(rec.NextReview).
			SetCorrectCount(rec.CorrectCount).
			SetIncorrectCount(rec.IncorrectCount).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.LearnedItem.Create().
			SetUserID(rec.UserID).
			SetItemID(rec.ItemID).
			SetItemType(string(rec.ItemType)).
			SetScript(string(rec.Script)).
			SetStrength(rec.Strength).
			SetNillableLastReviewed(rec.LastReviewed).
			SetNextReview(rec.NextReview).
			SetCorrectCount(rec.CorrectCount).
			SetIncorrectCount(rec.IncorrectCount).
			Save(ctx)
	}
	if err != nil {
		return &StorageError{Op: "put record", UserID: rec.UserID, ItemID: rec.ItemID, Err: err}
	}
	return nil
}

func (r *recordRepo) Due(ctx context.Context, userID string, filter ItemFilter, asOf time.Time) ([]strength.Record, error) {
	preds := []predicate.LearnedItem{
		learneditem.UserID(userID),
		learneditem.Or(
			learneditem.NextReviewLTE(asOf),
			learneditem.LastReviewedIsNil(),
		),
	}
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		preds = append(preds, learneditem.ItemTypeIn(types...))
	}
	if len(filter.Scripts) > 0 {
		scripts := make([]string, len(filter.Scripts))
		for i, sc := range filter.Scripts {
			scripts[i] = string(sc)
		}
		preds = append(preds, learneditem.ScriptIn(scripts...))
	}

	items, err := r.client.LearnedItem.Query().
		Where(preds...).
		Order(ent.Asc(learneditem.FieldNextReview), ent.Asc(learneditem.FieldItemID)).
		All(ctx)
	if err != nil {
		return nil, &StorageError{Op: "query due records", UserID: userID, Err: err}
	}

	recs := make([]strength.Record, len(items))
	for i, li := range items {
		recs[i] = entToRecord(li)
	}
	return recs, nil
}

func (r *recordRepo) DueRecords(ctx context.Context, userID string, asOf time.Time) ([]strength.Record, error) {
	return r.Due(ctx, userID, ItemFilter{}, asOf)
}

func (r *recordRepo) KnownItemIDs(ctx context.Context, userID string) (map[string]bool, error) {
	ids, err := r.client.LearnedItem.Query().
		Where(learneditem.UserID(userID)).
		Select(learneditem.FieldItemID).
		Strings(ctx)
	if err != nil {
		return nil, &StorageError{Op: "query known items", UserID: userID, Err: err}
	}
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return known, nil
}

func entToRecord(li *ent.LearnedItem) strength.Record {
	return strength.Record{
		UserID:         li.UserID,
		ItemID:         li.ItemID,
		ItemType:       catalog.ItemType(li.ItemType),
		Script:         catalog.Script(li.Script),
		Strength:       li.Strength,
		LastReviewed:   li.LastReviewed,
		NextReview:     li.NextReview,
		CorrectCount:   li.CorrectCount,
		IncorrectCount: li.IncorrectCount,
	}
}
