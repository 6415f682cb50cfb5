package memory

import (
	"context"
	"sync"

	"pet-profiler/internal/domain/tips"
)

type tipsRepo struct {
	mu    sync.RWMutex
	byPet map[petKey]tips.Record
}

func NewTipsRepo() tips.Repository {
	return &tipsRepo{
		byPet: make(map[petKey]tips.Record),
	}
}

func (r *tipsRepo) Get(ctx context.Context, userID, petID string) (tips.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byPet[key(userID, petID)]
	return rec, ok, nil
}

func (r *tipsRepo) Save(ctx context.Context, rec tips.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPet[key(rec.UserID, rec.PetID)] = rec
	return nil
}
