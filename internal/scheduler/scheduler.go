package scheduler

import (
	"context"
	"strings"
	"time"

	"pet-profiler/internal/domain/pets"
	"pet-profiler/internal/platform/logger"

	"github.com/robfig/cron/v3"
)

// PetLister lista todos los perfiles guardados (de todos los usuarios).
type PetLister interface {
	ListAll(ctx context.Context) ([]pets.Pet, error)
}

// TipsRefresher pide tips nuevos solo si el cache venció.
type TipsRefresher interface {
	RefreshIfStale(ctx context.Context, userID, petID string) (bool, error)
}

// Scheduler corre el refresco periódico de tips vencidos.
type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc

	spec string
	pets PetLister
	tips TipsRefresher
	log  logger.Logger
}

func New(spec string, petsSvc PetLister, tipsSvc TipsRefresher, log logger.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	if log == nil {
		log = logger.Nop()
	}

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
		spec:   strings.TrimSpace(spec),
		pets:   petsSvc,
		tips:   tipsSvc,
		log:    log,
	}
}

// Start registra el job y arranca cron. Con spec vacío no hace nada.
func (s *Scheduler) Start() error {
	if s.spec == "" {
		s.log.Info("tips refresh disabled", nil)
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		if _, err := s.RefreshStaleTips(s.ctx); err != nil {
			s.log.Error("tips refresh failed", map[string]any{"error": err})
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("scheduler started", map[string]any{"tips_refresh": s.spec})
	return nil
}

// RefreshStaleTips recorre todos los pets y refresca los tips vencidos.
// Un pet que falla no corta el recorrido. Devuelve cuántos se refrescaron.
func (s *Scheduler) RefreshStaleTips(ctx context.Context) (int, error) {
	all, err := s.pets.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, p := range all {
		if ctx.Err() != nil {
			return refreshed, ctx.Err()
		}
		ok, err := s.tips.RefreshIfStale(ctx, p.UserID, p.PetID)
		if err != nil {
			s.log.Warn("tips refresh for pet failed", map[string]any{
				"user_id": p.UserID,
				"pet_id":  p.PetID,
				"error":   err,
			})
			continue
		}
		if ok {
			refreshed++
		}
	}

	s.log.Info("tips refresh done", map[string]any{"pets": len(all), "refreshed": refreshed})
	return refreshed, nil
}

// Stop cancela primero el ctx de los jobs para que un refresh en curso corte
// sus llamadas al backend, y después espera a que cron termine.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	s.log.Info("scheduler stopped", nil)
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
