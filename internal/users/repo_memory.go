package users

import (
	"context"
	"sync"
)

// MemoryRepo stores users in process memory for dev and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]User)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.users[user.ID] = user
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user, ok := r.users[userID]; ok {
		return user, nil
	}
	return User{}, ErrNotFound
}
