package filestore

import (
	"context"

	"pet-profiler/internal/domain/tips"
)

type tipsRepo struct {
	s *Store
}

func NewTipsRepo(s *Store) tips.Repository {
	return &tipsRepo{s: s}
}

func tipsFile(userID, petID string) (string, error) {
	return pairFile(userID, petID, "tips")
}

func (r *tipsRepo) Get(ctx context.Context, userID, petID string) (tips.Record, bool, error) {
	name, err := tipsFile(userID, petID)
	if err != nil {
		return tips.Record{}, false, err
	}
	unlock := r.s.lock(name)
	defer unlock()

	var rec tips.Record
	found, err := r.s.loadUnlocked(name, &rec)
	if err != nil || !found {
		return tips.Record{}, false, err
	}
	return rec, true, nil
}

func (r *tipsRepo) Save(ctx context.Context, rec tips.Record) error {
	name, err := tipsFile(rec.UserID, rec.PetID)
	if err != nil {
		return err
	}
	unlock := r.s.lock(name)
	defer unlock()

	return r.s.saveUnlocked(name, rec)
}
