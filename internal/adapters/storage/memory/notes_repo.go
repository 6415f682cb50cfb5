package memory

import (
	"context"
	"sync"

	"pet-profiler/internal/domain/notes"
)

type noteRepo struct {
	mu    sync.RWMutex
	byPet map[petKey][]notes.Note
}

func NewNoteRepo() notes.Repository {
	return &noteRepo{
		byPet: make(map[petKey][]notes.Note),
	}
}

// petKey es comparable; concatenar strings haría colisionar ("a/b","c") con ("a","b/c").
type petKey struct {
	userID string
	petID  string
}

func key(userID, petID string) petKey {
	return petKey{userID: userID, petID: petID}
}

func (r *noteRepo) Load(ctx context.Context, userID, petID string) ([]notes.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// copia para que el caller no mute el estado interno
	return append([]notes.Note{}, r.byPet[key(userID, petID)]...), nil
}

func (r *noteRepo) Save(ctx context.Context, userID, petID string, items []notes.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPet[key(userID, petID)] = append([]notes.Note{}, items...)
	return nil
}
