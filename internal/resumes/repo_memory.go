package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Record)}
}

// Put stores a record keyed by ResumeID.
func (r *MemoryRepo) Put(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.ResumeID] = rec
	return nil
}

// All returns every stored record in no particular order.
func (r *MemoryRepo) All() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, 0, len(r.data))
	for _, rec := range r.data {
		out = append(out, rec)
	}
	return out
}

var _ Repo = (*MemoryRepo)(nil)
