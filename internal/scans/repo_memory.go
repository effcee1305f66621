package scans

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[string][]Scan
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: make(map[string][]Scan)}
}

func (r *MemoryRepo) Create(ctx context.Context, scan Scan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	// Newest first: takenAt, then createdAt, then insertion order.
	list := append([]Scan{scan}, r.byUser[scan.UserID]...)
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].TakenAt.Equal(list[j].TakenAt) {
			return list[i].TakenAt.After(list[j].TakenAt)
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	r.byUser[scan.UserID] = list
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Scan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.byUser[userID]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return append([]Scan{}, list...), nil
}

func (r *MemoryRepo) Latest(ctx context.Context, userID string) (Scan, error) {
	if err := ctx.Err(); err != nil {
		return Scan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.byUser[userID]
	if len(list) == 0 {
		return Scan{}, ErrNotFound
	}
	return list[0], nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, scanID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.byUser[userID]
	for i, s := range list {
		if s.ID == scanID {
			r.byUser[userID] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
