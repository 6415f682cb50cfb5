package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pet-profiler/internal/domain/gallery"

	"github.com/google/uuid"
)

const (
	petImagesDir = "PetImages"
	galleryDir   = "PetGallery"
	imageExt     = ".jpg"
)

// Images guarda las fotos tal cual llegan (sin re-encodear):
// PetImages/<uuid>.jpg para el scan y PetGallery/<userId>/<petId>/<uuid>.jpg
// para la galería.
type Images struct {
	s *Store
}

func NewImages(s *Store) *Images {
	return &Images{s: s}
}

var _ gallery.Store = (*Images)(nil)

// SavePetImage devuelve el nombre de archivo (no el path) para Pet.ImagePath.
func (im *Images) SavePetImage(data []byte) (string, error) {
	name := uuid.NewString() + imageExt
	if err := writeAtomic(filepath.Join(im.s.dir, petImagesDir, name), data); err != nil {
		return "", err
	}
	return name, nil
}

func (im *Images) PetImagePath(name string) (string, error) {
	if err := safeSegment(name); err != nil {
		return "", err
	}
	p := filepath.Join(im.s.dir, petImagesDir, name)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}

// galleryPath arma PetGallery/<userId>/<petId>; el pet_id solo no alcanza
// porque dos usuarios pueden guardar el mismo.
func (im *Images) galleryPath(userID, petID string) (string, error) {
	if err := safeSegment(userID); err != nil {
		return "", fmt.Errorf("%w: %v", gallery.ErrInvalidInput, err)
	}
	if err := safeSegment(petID); err != nil {
		return "", fmt.Errorf("%w: %v", gallery.ErrInvalidInput, err)
	}
	return filepath.Join(im.s.dir, galleryDir, userID, petID), nil
}

func (im *Images) Save(ctx context.Context, userID, petID string, data []byte) (gallery.Image, error) {
	dir, err := im.galleryPath(userID, petID)
	if err != nil {
		return gallery.Image{}, err
	}
	id := uuid.NewString()
	p := filepath.Join(dir, id+imageExt)
	if err := writeAtomic(p, data); err != nil {
		return gallery.Image{}, err
	}
	return gallery.Image{ID: id, Path: p}, nil
}

// List descubre la galería listando el directorio; orden por nombre.
func (im *Images) List(ctx context.Context, userID, petID string) ([]gallery.Image, error) {
	dir, err := im.galleryPath(userID, petID)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return []gallery.Image{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read gallery: %w", err)
	}

	out := make([]gallery.Image, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), imageExt) {
			continue
		}
		out = append(out, gallery.Image{
			ID:   strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (im *Images) Path(ctx context.Context, userID, petID, imageID string) (string, error) {
	dir, err := im.galleryPath(userID, petID)
	if err != nil {
		return "", err
	}
	if safeSegment(imageID) != nil {
		return "", gallery.ErrInvalidInput
	}
	p := filepath.Join(dir, imageID+imageExt)
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", gallery.ErrNotFound
		}
		return "", err
	}
	return p, nil
}
