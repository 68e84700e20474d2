package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sagara/kotoba/ent"
	"github.com/sagara/kotoba/ent/statssnapshot"
	"github.com/sagara/kotoba/internal/progress"
)

// StatsRepo persists user statistics and daily-goal state as snapshots.
type StatsRepo interface {
	// Load returns the latest snapshot for the user. ok is false when
	// the user has no snapshot yet.
	Load(ctx context.Context, userID string) (stats progress.Stats, goal progress.Goal, ok bool, err error)

	// Save stores a new snapshot.
	Save(ctx context.Context, userID string, stats progress.Stats, goal progress.Goal) error

	// Prune deletes all but the N most recent snapshots for the user.
	Prune(ctx context.Context, userID string, keep int) error
}

// statsData is the JSON shape stored in a snapshot row.
type statsData struct {
	Stats progress.Stats `json:"stats"`
	Goal  progress.Goal  `json:"goal"`
}

// statsRepo implements StatsRepo using the ent client.
type statsRepo struct {
	client *ent.Client
}

func (r *statsRepo) Load(ctx context.Context, userID string) (progress.Stats, progress.Goal, bool, error) {
	snap, err := r.client.StatsSnapshot.Query().
		Where(statssnapshot.UserID(userID)).
		Order(ent.Desc(statssnapshot.FieldTimestamp), ent.Desc(statssnapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return progress.NewStats(), progress.DefaultGoal(), false, nil
		}
		return progress.Stats{}, progress.Goal{}, false, &StorageError{Op: "load stats", UserID: userID, Err: err}
	}

	b, err := json.Marshal(snap.Data)
	if err != nil {
		return progress.Stats{}, progress.Goal{}, false, fmt.Errorf("marshal snapshot data: %w", err)
	}
	var data statsData
	if err := json.Unmarshal(b, &data); err != nil {
		return progress.Stats{}, progress.Goal{}, false, fmt.Errorf("unmarshal stats snapshot: %w", err)
	}
	if data.Stats.CharactersLearned == nil {
		data.Stats.CharactersLearned = progress.NewStats().CharactersLearned
	}
	return data.Stats, data.Goal, true, nil
}

func (r *statsRepo) Save(ctx context.Context, userID string, stats progress.Stats, goal progress.Goal) error {
	dataMap, err := toMap(statsData{Stats: stats, Goal: goal})
	if err != nil {
		return fmt.Errorf("marshal stats data: %w", err)
	}

	_, err = r.client.StatsSnapshot.Create().
		SetUserID(userID).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return &StorageError{Op: "save stats", UserID: userID, Err: err}
	}
	return nil
}

func (r *statsRepo) Prune(ctx context.Context, userID string, keep int) error {
	snaps, err := r.client.StatsSnapshot.Query().
		Where(statssnapshot.UserID(userID)).
		Order(ent.Desc(statssnapshot.FieldTimestamp), ent.Desc(statssnapshot.FieldID)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return &StorageError{Op: "query snapshots for prune", UserID: userID, Err: err}
	}
	if len(snaps) == 0 {
		return nil // fewer than keep snapshots exist
	}

	// The id breaks timestamp ties so snapshots inside the keep window
	// are never deleted.
	boundary := snaps[0]
	_, err = r.client.StatsSnapshot.Delete().
		Where(
			statssnapshot.UserID(userID),
			statssnapshot.Or(
				statssnapshot.TimestampLT(boundary.Timestamp),
				statssnapshot.And(
					statssnapshot.TimestampEQ(boundary.Timestamp),
					statssnapshot.IDLTE(boundary.ID),
				),
			),
		).
		Exec(ctx)
	if err != nil {
		return &StorageError{Op: "prune snapshots", UserID: userID, Err: err}
	}
	return nil
}

// toMap converts a value to map[string]any for ent JSON storage.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
