package pets

import "context"

// Repository persiste la colección completa de mascotas.
// Upsert reemplaza por ID (local); Delete es idempotente.
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	Upsert(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
}
