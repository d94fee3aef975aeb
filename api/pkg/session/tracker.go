package session

import (
	"context"
	"sort"
	"sync"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/system"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

// TrackerAPI is the slice of the platform client the tracker needs.
type TrackerAPI interface {
	GetRecommendations(ctx context.Context) (*types.RecommendationSet, error)
	LogInteraction(ctx context.Context, req *types.InteractionRequest) (*types.InteractionResponse, error)
}

// Tracker maintains the local applied/saved membership sets for the
// current candidate. The backend is the source of truth - Hydrate pulls
// the stored sets, Mark* records new membership through the idempotent
// interaction log and never duplicates an id locally.
type Tracker struct {
	api TrackerAPI

	mu      sync.Mutex
	applied map[int64]struct{}
	saved   map[int64]struct{}
}

func NewTracker(api TrackerAPI) *Tracker {
	return &Tracker{
		api:     api,
		applied: map[int64]struct{}{},
		saved:   map[int64]struct{}{},
	}
}

// Hydrate replaces the local sets with the backend's stored membership.
func (t *Tracker) Hydrate(ctx context.Context) (*types.RecommendationSet, error) {
	recommendations, err := t.api.GetRecommendations(ctx)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.applied = map[int64]struct{}{}
	for _, id := range recommendations.AppliedJobIDs {
		t.applied[id] = struct{}{}
	}
	t.saved = map[int64]struct{}{}
	for _, id := range recommendations.SavedJobIDs {
		t.saved[id] = struct{}{}
	}

	return recommendations, nil
}

// MarkApplied records an application against a job. An already_exists
// answer means the backend saw this pair before and counts as success.
func (t *Tracker) MarkApplied(ctx context.Context, jobID int64) error {
	return t.mark(ctx, jobID, types.InteractionActionApplied)
}

// MarkSaved bookmarks a job for the candidate.
func (t *Tracker) MarkSaved(ctx context.Context, jobID int64) error {
	return t.mark(ctx, jobID, types.InteractionActionSaved)
}

func (t *Tracker) mark(ctx context.Context, jobID int64, action types.InteractionAction) error {
	resp, err := t.api.LogInteraction(ctx, &types.InteractionRequest{
		JobID:    jobID,
		Action:   action,
		ClientID: system.GenerateUUID(),
	})
	if err != nil {
		return err
	}

	if resp.Recorded() {
		t.mu.Lock()
		defer t.mu.Unlock()
		// set semantics: replaying an action never duplicates the id
		switch action {
		case types.InteractionActionApplied:
			t.applied[jobID] = struct{}{}
		case types.InteractionActionSaved:
			t.saved[jobID] = struct{}{}
		}
	}

	return nil
}

func (t *Tracker) IsApplied(jobID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.applied[jobID]
	return ok
}

func (t *Tracker) IsSaved(jobID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.saved[jobID]
	return ok
}

// Applied returns the applied job ids in ascending order.
func (t *Tracker) Applied() []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return sortedIDs(t.applied)
}

// Saved returns the saved job ids in ascending order.
func (t *Tracker) Saved() []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return sortedIDs(t.saved)
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
