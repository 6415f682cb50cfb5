package gallery

import (
	"context"
	"errors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("image not found")
)

// Image es una foto de la galería. No se persiste como dato estructurado:
// se descubre listando el directorio del pet.
type Image struct {
	ID   string `json:"id"`
	Path string `json:"-"`
}

// Store guarda y lista archivos de galería por (user, pet).
type Store interface {
	Save(ctx context.Context, userID, petID string, data []byte) (Image, error)
	List(ctx context.Context, userID, petID string) ([]Image, error)
	Path(ctx context.Context, userID, petID, imageID string) (string, error)
}
