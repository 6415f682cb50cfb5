package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"pet-profiler/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM pets ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var p pets.Pet
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode pet: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Upsert(ctx context.Context, p pets.Pet) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (id, user_id, pet_id, data, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			pet_id = EXCLUDED.pet_id,
			data = EXCLUDED.data,
			updated_at = now()
	`, p.ID, p.UserID, p.PetID, string(raw))
	return err
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	return err
}
