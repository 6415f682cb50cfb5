package filestore

import (
	"context"

	"pet-profiler/internal/domain/notes"
)

type noteRepo struct {
	s *Store
}

func NewNoteRepo(s *Store) notes.Repository {
	return &noteRepo{s: s}
}

func notesFile(userID, petID string) (string, error) {
	return pairFile(userID, petID, "notes")
}

func (r *noteRepo) Load(ctx context.Context, userID, petID string) ([]notes.Note, error) {
	name, err := notesFile(userID, petID)
	if err != nil {
		return nil, err
	}
	unlock := r.s.lock(name)
	defer unlock()

	var items []notes.Note
	found, err := r.s.loadUnlocked(name, &items)
	if err != nil {
		return nil, err
	}
	if !found || items == nil {
		items = []notes.Note{}
	}
	return items, nil
}

func (r *noteRepo) Save(ctx context.Context, userID, petID string, items []notes.Note) error {
	name, err := notesFile(userID, petID)
	if err != nil {
		return err
	}
	unlock := r.s.lock(name)
	defer unlock()

	if items == nil {
		items = []notes.Note{}
	}
	return r.s.saveUnlocked(name, items)
}
