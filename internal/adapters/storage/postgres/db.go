package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Los registros se guardan como jsonb con el mismo shape que los archivos JSON.
const schema = `
CREATE TABLE IF NOT EXISTS pets (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	pet_id     TEXT NOT NULL,
	data       JSONB NOT NULL,
	seq        BIGSERIAL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS pets_user_pet_idx ON pets (user_id, pet_id);

CREATE TABLE IF NOT EXISTS pet_notes (
	user_id TEXT NOT NULL,
	pet_id  TEXT NOT NULL,
	id      TEXT NOT NULL,
	pos     INT  NOT NULL,
	data    JSONB NOT NULL,
	PRIMARY KEY (user_id, pet_id, id)
);

CREATE TABLE IF NOT EXISTS pet_tips (
	user_id    TEXT NOT NULL,
	pet_id     TEXT NOT NULL,
	fetched_at TIMESTAMPTZ NOT NULL,
	data       JSONB NOT NULL,
	PRIMARY KEY (user_id, pet_id)
);
`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
