package tips

import (
	"context"
	"strings"
	"time"

	"pet-profiler/internal/platform/logger"
	"pet-profiler/internal/ports/backend"
)

const DefaultTTL = 7 * 24 * time.Hour

type Service struct {
	backend backend.TipsBackend
	repo    Repository
	ttl     time.Duration
	log     logger.Logger
	now     func() time.Time
}

func NewService(b backend.TipsBackend, repo Repository, ttl time.Duration, log logger.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{backend: b, repo: repo, ttl: ttl, log: log, now: time.Now}
}

type Result struct {
	FetchedAt time.Time `json:"fetched_at"`
	Cached    bool      `json:"cached"`
	Tips      []Tip     `json:"tips"`
}

// Get devuelve las recomendaciones cacheadas si tienen menos de ttl;
// si no (o si force), las pide al backend y las guarda.
func (s *Service) Get(ctx context.Context, userID, petID string, force bool) (Result, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(petID) == "" {
		return Result{}, ErrInvalidInput
	}

	if !force {
		rec, found, err := s.repo.Get(ctx, userID, petID)
		if err != nil {
			// el cache es accesorio: si no se puede leer, se pide de nuevo
			s.log.Warn("tips cache read failed", map[string]any{"pet_id": petID, "error": err})
		} else if found && s.fresh(rec) {
			return Result{FetchedAt: rec.FetchedAt, Cached: true, Tips: rec.Recommendations.Sorted()}, nil
		}
	}

	rec, err := s.fetch(ctx, userID, petID)
	if err != nil {
		return Result{}, err
	}
	return Result{FetchedAt: rec.FetchedAt, Tips: rec.Recommendations.Sorted()}, nil
}

// RefreshIfStale pide tips nuevos solo si el cache venció. Devuelve si hubo fetch.
func (s *Service) RefreshIfStale(ctx context.Context, userID, petID string) (bool, error) {
	rec, found, err := s.repo.Get(ctx, userID, petID)
	if err == nil && found && s.fresh(rec) {
		return false, nil
	}
	if _, err := s.fetch(ctx, userID, petID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) fresh(rec Record) bool {
	return s.now().Sub(rec.FetchedAt) < s.ttl
}

func (s *Service) fetch(ctx context.Context, userID, petID string) (Record, error) {
	raw, err := s.backend.FetchTips(ctx, userID, petID)
	if err != nil {
		return Record{}, err
	}
	recs, err := ParseRecommendations(raw)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		UserID:          userID,
		PetID:           petID,
		FetchedAt:       s.now().UTC(),
		Recommendations: recs,
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		// se devuelven igual; el próximo Get vuelve a pedirlas
		s.log.Error("tips cache write failed", map[string]any{"pet_id": petID, "error": err})
	}
	return rec, nil
}
