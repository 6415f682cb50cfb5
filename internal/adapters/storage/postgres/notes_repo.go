package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"pet-profiler/internal/domain/notes"
)

type NotesRepo struct {
	db *sql.DB
}

func NewNotesRepo(db *sql.DB) *NotesRepo {
	return &NotesRepo{db: db}
}

var _ notes.Repository = (*NotesRepo)(nil)

func (r *NotesRepo) Load(ctx context.Context, userID, petID string) ([]notes.Note, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT data FROM pet_notes
		WHERE user_id = $1 AND pet_id = $2
		ORDER BY pos ASC
	`, userID, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notes.Note, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var n notes.Note
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Save reemplaza el array completo dentro de una transacción.
func (r *NotesRepo) Save(ctx context.Context, userID, petID string, items []notes.Note) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pet_notes WHERE user_id = $1 AND pet_id = $2`, userID, petID); err != nil {
		return err
	}
	for i, n := range items {
		raw, err := json.Marshal(n)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pet_notes (user_id, pet_id, id, pos, data)
			VALUES ($1, $2, $3, $4, $5)
		`, userID, petID, n.ID, i, string(raw)); err != nil {
			return err
		}
	}
	return tx.Commit()
}
