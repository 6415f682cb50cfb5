package gallery

import (
	"context"
	"strings"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func validPair(userID, petID string) bool {
	return strings.TrimSpace(userID) != "" && strings.TrimSpace(petID) != ""
}

func (s *Service) Add(ctx context.Context, userID, petID string, data []byte) (Image, error) {
	if !validPair(userID, petID) || len(data) == 0 {
		return Image{}, ErrInvalidInput
	}
	return s.store.Save(ctx, userID, petID, data)
}

// AddAll guarda varias fotos; corta en el primer error y devuelve lo ya guardado.
func (s *Service) AddAll(ctx context.Context, userID, petID string, images [][]byte) ([]Image, error) {
	out := make([]Image, 0, len(images))
	for _, data := range images {
		img, err := s.Add(ctx, userID, petID, data)
		if err != nil {
			return out, err
		}
		out = append(out, img)
	}
	return out, nil
}

func (s *Service) List(ctx context.Context, userID, petID string) ([]Image, error) {
	if !validPair(userID, petID) {
		return nil, ErrInvalidInput
	}
	return s.store.List(ctx, userID, petID)
}

func (s *Service) Path(ctx context.Context, userID, petID, imageID string) (string, error) {
	if !validPair(userID, petID) || strings.TrimSpace(imageID) == "" {
		return "", ErrInvalidInput
	}
	return s.store.Path(ctx, userID, petID, imageID)
}
