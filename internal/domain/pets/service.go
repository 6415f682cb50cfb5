package pets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrConflict: el usuario ya tiene ese pet_id guardado bajo otro id local.
	ErrConflict = errors.New("pet_id already saved under another id")

	// ErrSyncFailed: el perfil quedó guardado localmente pero el backend
	// rechazó (o no respondió) la actualización.
	ErrSyncFailed = errors.New("pet saved locally but backend sync failed")
)

// RemoteSync publica el perfil confirmado en el backend (update_scan).
type RemoteSync interface {
	UpdatePetInfo(ctx context.Context, userID, petID, petJSON string) error
}

type Service struct {
	repo   Repository
	remote RemoteSync
	now    func() time.Time

	// serializa check + upsert; el repo reescribe la colección entera
	mu sync.Mutex
}

// NewService: remote puede ser nil (Confirm entonces solo guarda local).
func NewService(repo Repository, remote RemoteSync) *Service {
	return &Service{
		repo:   repo,
		remote: remote,
		now:    time.Now,
	}
}

// Save valida y hace upsert por ID. Un id existente de otro usuario es
// ErrNotFound; el mismo (user_id, pet_id) bajo otro id es ErrConflict.
// Si p no trae ImagePath se conserva el del registro guardado.
func (s *Service) Save(ctx context.Context, p Pet) (Pet, error) {
	p, err := normalize(p)
	if err != nil {
		return Pet{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx, p)
}

// SaveScanned guarda el resultado de un scan. Si el usuario ya tenía ese
// pet_id, reemplaza ese registro (mismo id local) y conserva lo que el scan
// no trae: la confirmación y la foto si no hay nueva.
func (s *Service) SaveScanned(ctx context.Context, p Pet) (Pet, error) {
	p, err := normalize(p)
	if err != nil {
		return Pet{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.List(ctx)
	if err != nil {
		return Pet{}, err
	}
	for _, q := range all {
		if q.UserID != p.UserID || q.PetID != p.PetID {
			continue
		}
		p.ID = q.ID
		if p.Birthday == nil {
			p.Birthday = q.Birthday
		}
		if p.ZodiacSign == nil {
			p.ZodiacSign = q.ZodiacSign
		}
		if p.Personality == nil {
			p.Personality = q.Personality
		}
		break
	}
	return s.saveLocked(ctx, p)
}

func normalize(p Pet) (Pet, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.PetID = strings.TrimSpace(p.PetID)
	p.UserID = strings.TrimSpace(p.UserID)
	if p.ID == "" || p.PetID == "" || p.UserID == "" {
		return Pet{}, ErrInvalidInput
	}
	if p.ID == p.PetID {
		// el ID local nunca es el id del backend
		return Pet{}, ErrInvalidInput
	}
	return p, nil
}

func (s *Service) saveLocked(ctx context.Context, p Pet) (Pet, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Pet{}, err
	}
	for _, q := range all {
		switch {
		case q.ID == p.ID && q.UserID != p.UserID:
			return Pet{}, ErrNotFound
		case q.ID == p.ID:
			if p.ImagePath == "" {
				p.ImagePath = q.ImagePath
			}
		case q.UserID == p.UserID && q.PetID == p.PetID:
			return Pet{}, ErrConflict
		}
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, userID string) ([]Pet, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Pet, 0, len(all))
	for _, p := range all {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByPetID busca por (userID, petID del backend).
func (s *Service) GetByPetID(ctx context.Context, userID, petID string) (Pet, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Pet{}, err
	}
	for _, p := range all {
		if p.UserID == userID && p.PetID == petID {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

// UpdateInput: punteros para PATCH real, nil = no tocar.
type UpdateInput struct {
	Name           *string
	PrimaryBreed   *string
	SecondaryBreed *string
	Height         *float64
	Weight         *float64
	Length         *float64
	Gender         *string
	CoatLength     *string
	CoatType       *string
	CoatColor      *string
	FitnessLevel   *string
	AnimalType     *string
}

func (s *Service) Update(ctx context.Context, userID, petID string, in UpdateInput) (Pet, error) {
	p, err := s.GetByPetID(ctx, userID, petID)
	if err != nil {
		return Pet{}, err
	}

	setStr := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	setNum := func(dst *float64, v *float64) error {
		if v == nil {
			return nil
		}
		if *v < 0 {
			return ErrInvalidInput
		}
		*dst = *v
		return nil
	}

	setStr(&p.Name, in.Name)
	setStr(&p.PrimaryBreed, in.PrimaryBreed)
	setStr(&p.Gender, in.Gender)
	setStr(&p.CoatLength, in.CoatLength)
	setStr(&p.CoatType, in.CoatType)
	setStr(&p.CoatColor, in.CoatColor)
	setStr(&p.FitnessLevel, in.FitnessLevel)
	setStr(&p.AnimalType, in.AnimalType)
	if in.SecondaryBreed != nil {
		if v := strings.TrimSpace(*in.SecondaryBreed); v != "" {
			p.SecondaryBreed = &v
		} else {
			p.SecondaryBreed = nil
		}
	}
	for _, f := range []struct {
		dst *float64
		v   *float64
	}{{&p.Height, in.Height}, {&p.Weight, in.Weight}, {&p.Length, in.Length}} {
		if err := setNum(f.dst, f.v); err != nil {
			return Pet{}, err
		}
	}

	return s.Save(ctx, p)
}

func (s *Service) Delete(ctx context.Context, userID, petID string) error {
	p, err := s.GetByPetID(ctx, userID, petID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, p.ID)
}

type ConfirmInput struct {
	Birthday    time.Time
	Personality string
}

// Confirm completa el perfil (edad, signo, personalidad), lo guarda y lo
// sincroniza con el backend. Si la sync falla devuelve el pet guardado y
// un error que envuelve ErrSyncFailed.
func (s *Service) Confirm(ctx context.Context, userID, petID string, in ConfirmInput) (Pet, error) {
	if in.Birthday.IsZero() || in.Birthday.After(s.now()) {
		return Pet{}, ErrInvalidInput
	}
	personality := strings.TrimSpace(in.Personality)
	if !slices.Contains(Personalities, personality) {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.GetByPetID(ctx, userID, petID)
	if err != nil {
		return Pet{}, err
	}

	bd := in.Birthday
	sign := ZodiacSign(bd)
	p.Birthday = &bd
	p.ZodiacSign = &sign
	p.Personality = &personality
	p.Age = AgeInYears(bd, s.now())

	saved, err := s.Save(ctx, p)
	if err != nil {
		return Pet{}, err
	}

	if s.remote == nil {
		return saved, nil
	}

	b, err := json.Marshal(saved)
	if err != nil {
		return saved, fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}
	if err := s.remote.UpdatePetInfo(ctx, saved.UserID, saved.PetID, string(b)); err != nil {
		return saved, fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}
	return saved, nil
}
