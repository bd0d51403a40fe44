package users

import (
	"context"
	"sync"
)

// MemoryRepo implements Repo in process memory for development and tests.
type MemoryRepo struct {
	mu         sync.RWMutex
	byID       map[string]User
	byEmail    map[string]string
	byUsername map[string]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:       make(map[string]User),
		byEmail:    make(map[string]string),
		byUsername: make(map[string]string),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[user.Email]; taken {
		return ErrDuplicate
	}
	if _, taken := r.byUsername[user.Username]; taken {
		return ErrDuplicate
	}
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID
	r.byUsername[user.Username] = user.ID
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *MemoryRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, ok := r.byUsername[identifier]; ok {
		return r.byID[id], nil
	}
	if id, ok := r.byEmail[identifier]; ok {
		return r.byID[id], nil
	}
	return User{}, ErrNotFound
}
