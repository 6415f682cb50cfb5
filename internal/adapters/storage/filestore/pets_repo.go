package filestore

import (
	"context"

	"pet-profiler/internal/domain/pets"
)

const petsFile = "pets.json"

type petRepo struct {
	s *Store
}

func NewPetRepo(s *Store) pets.Repository {
	return &petRepo{s: s}
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	unlock := r.s.lock(petsFile)
	defer unlock()

	items, err := r.loadUnlocked()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []pets.Pet{}
	}
	return items, nil
}

func (r *petRepo) Upsert(ctx context.Context, p pets.Pet) error {
	unlock := r.s.lock(petsFile)
	defer unlock()

	items, err := r.loadUnlocked()
	if err != nil {
		return err
	}

	updated := false
	for i := range items {
		if items[i].ID == p.ID {
			items[i] = p
			updated = true
			break
		}
	}
	if !updated {
		items = append(items, p)
	}
	return r.s.saveUnlocked(petsFile, items)
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	unlock := r.s.lock(petsFile)
	defer unlock()

	items, err := r.loadUnlocked()
	if err != nil {
		return err
	}

	out := make([]pets.Pet, 0, len(items))
	for _, p := range items {
		if p.ID != id {
			out = append(out, p)
		}
	}
	if len(out) == len(items) {
		return nil
	}
	return r.s.saveUnlocked(petsFile, out)
}

// loadUnlocked descarta lo que haya quedado a medio decodificar si el archivo es inválido.
func (r *petRepo) loadUnlocked() ([]pets.Pet, error) {
	var items []pets.Pet
	found, err := r.s.loadUnlocked(petsFile, &items)
	if err != nil || !found {
		return nil, err
	}
	return items, nil
}
