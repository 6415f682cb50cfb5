package notes

import "context"

// Repository guarda el array completo de notas de un pet (last writer wins).
// Load sobre un pet sin notas devuelve un slice vacío, no error.
type Repository interface {
	Load(ctx context.Context, userID, petID string) ([]Note, error)
	Save(ctx context.Context, userID, petID string, items []Note) error
}
