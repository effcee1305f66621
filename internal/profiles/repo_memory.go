package profiles

import (
	"context"
	"slices"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{profiles: make(map[string]Profile)}
}

func (r *MemoryRepo) Get(ctx context.Context, userID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return clone(p), nil
}

func (r *MemoryRepo) Save(ctx context.Context, profile Profile) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.profiles[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	r.profiles[profile.UserID] = clone(profile)
	return profile, nil
}

func clone(p Profile) Profile {
	p.Allergies = slices.Clone(p.Allergies)
	p.CustomChecklist = slices.Clone(p.CustomChecklist)
	return p
}
