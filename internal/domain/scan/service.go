package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-profiler/internal/domain/pets"
	"pet-profiler/internal/platform/logger"
	"pet-profiler/internal/ports/backend"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// ImageSaver guarda la foto del scan y devuelve el nombre de archivo local.
type ImageSaver interface {
	SavePetImage(data []byte) (string, error)
}

// PetSaver persiste el perfil (pets.Service). Un re-scan del mismo pet_id
// reemplaza el registro que ya tenía el usuario.
type PetSaver interface {
	SaveScanned(ctx context.Context, p pets.Pet) (pets.Pet, error)
}

type Service struct {
	backend backend.ScanBackend
	images  ImageSaver
	pets    PetSaver
	log     logger.Logger
}

func NewService(b backend.ScanBackend, images ImageSaver, petsSvc PetSaver, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{backend: b, images: images, pets: petsSvc, log: log}
}

type Input struct {
	UserID string
	PetID  string // si está vacío se genera uno nuevo
	Name   string
	Image  []byte
	Save   bool
}

type Result struct {
	Pet   pets.Pet
	Saved bool
}

// Scan corre presign -> upload -> process -> parse en secuencia. Cada etapa
// arranca recién cuando terminó la llamada de red anterior.
func (s *Service) Scan(ctx context.Context, in Input) (Result, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" || len(in.Image) == 0 {
		return Result{}, ErrInvalidInput
	}
	petID := strings.TrimSpace(in.PetID)
	if petID == "" {
		petID = uuid.NewString()
	}

	log := s.log.With(map[string]any{"user_id": userID, "pet_id": petID})

	up, err := s.backend.PresignScan(ctx, userID, petID)
	if err != nil {
		return Result{}, fmt.Errorf("presign: %w", err)
	}
	if err := s.backend.UploadImage(ctx, up.URL, in.Image); err != nil {
		return Result{}, fmt.Errorf("upload: %w", err)
	}
	raw, err := s.backend.ProcessScan(ctx, userID, petID, up.Key)
	if err != nil {
		return Result{}, fmt.Errorf("process: %w", err)
	}

	p, err := ParseScanResults(raw)
	if err != nil {
		log.Warn("scan results rejected", map[string]any{"error": err})
		return Result{}, err
	}
	p.Name = strings.TrimSpace(in.Name)
	p.UserID = userID
	p.PetID = petID

	if s.images != nil {
		name, err := s.images.SavePetImage(in.Image)
		if err != nil {
			// la foto local es accesoria; el scan sigue siendo válido
			log.Warn("save pet image failed", map[string]any{"error": err})
		} else {
			p.ImagePath = name
		}
	}

	log.Info("scan parsed", map[string]any{"image_key": up.Key, "breed": p.PrimaryBreed})

	if !in.Save || s.pets == nil {
		return Result{Pet: p}, nil
	}
	saved, err := s.pets.SaveScanned(ctx, p)
	if err != nil {
		return Result{}, err
	}
	return Result{Pet: saved, Saved: true}, nil
}
