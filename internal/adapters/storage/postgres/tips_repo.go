package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"pet-profiler/internal/domain/tips"
)

type TipsRepo struct {
	db *sql.DB
}

func NewTipsRepo(db *sql.DB) *TipsRepo {
	return &TipsRepo{db: db}
}

var _ tips.Repository = (*TipsRepo)(nil)

func (r *TipsRepo) Get(ctx context.Context, userID, petID string) (tips.Record, bool, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT data FROM pet_tips WHERE user_id = $1 AND pet_id = $2
	`, userID, petID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return tips.Record{}, false, nil
	}
	if err != nil {
		return tips.Record{}, false, err
	}

	var rec tips.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return tips.Record{}, false, fmt.Errorf("decode tips: %w", err)
	}
	return rec, true, nil
}

func (r *TipsRepo) Save(ctx context.Context, rec tips.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pet_tips (user_id, pet_id, fetched_at, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, pet_id) DO UPDATE SET
			fetched_at = EXCLUDED.fetched_at,
			data = EXCLUDED.data
	`, rec.UserID, rec.PetID, rec.FetchedAt, string(raw))
	return err
}
