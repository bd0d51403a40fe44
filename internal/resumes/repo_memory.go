package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo implements Repo in process memory for development and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resume
	seq  map[string]int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Resume), seq: make(map[string]int)}
}

func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.data[resume.UserID] = append(r.data[resume.UserID], resume)
	r.seq[resume.ID] = len(r.seq)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	owned := r.data[userID]
	out := make([]Resume, len(owned))
	copy(out, owned)
	// Newest first; insertion order breaks created_at ties.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.seq[out[i].ID] > r.seq[out[j].ID]
	})
	r.mu.RUnlock()
	return out, nil
}
