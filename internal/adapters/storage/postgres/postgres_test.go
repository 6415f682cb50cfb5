package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"pet-profiler/internal/domain/notes"
	"pet-profiler/internal/domain/pets"
	"pet-profiler/internal/domain/tips"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Corre solo contra una base real: PG_TEST_DSN=postgres://...
func openTestDB(t *testing.T) *PetsRepo {
	t.Helper()
	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN not set")
	}
	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, EnsureSchema(context.Background(), db))
	return NewPetsRepo(db)
}

func TestPostgres_PetsNotesTips(t *testing.T) {
	petsRepo := openTestDB(t)
	db := petsRepo.db
	ctx := context.Background()

	user := "u-" + uuid.NewString()
	p := pets.Pet{ID: uuid.NewString(), PetID: uuid.NewString(), UserID: user, Name: "Rex", Weight: 12.5}
	require.NoError(t, petsRepo.Upsert(ctx, p))
	p.Name = "Rexy"
	require.NoError(t, petsRepo.Upsert(ctx, p))

	all, err := petsRepo.List(ctx)
	require.NoError(t, err)
	var found *pets.Pet
	for i := range all {
		if all[i].ID == p.ID {
			found = &all[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Rexy", found.Name)
	require.NoError(t, petsRepo.Delete(ctx, p.ID))

	notesRepo := NewNotesRepo(db)
	in := []notes.Note{
		{ID: "n1", Title: "a", Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "n2", Content: "b", Date: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, notesRepo.Save(ctx, user, p.PetID, in))
	got, err := notesRepo.Load(ctx, user, p.PetID)
	require.NoError(t, err)
	assert.Equal(t, in, got)
	require.NoError(t, notesRepo.Save(ctx, user, p.PetID, nil))

	tipsRepo := NewTipsRepo(db)
	_, ok, err := tipsRepo.Get(ctx, user, p.PetID)
	require.NoError(t, err)
	assert.False(t, ok)
	rec := tips.Record{UserID: user, PetID: p.PetID, FetchedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, tipsRepo.Save(ctx, rec))
	gotRec, ok, err := tipsRepo.Get(ctx, user, p.PetID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, rec.FetchedAt.Equal(gotRec.FetchedAt))
}
