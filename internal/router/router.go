package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	backendhttp "pet-profiler/internal/adapters/backend"
	"pet-profiler/internal/adapters/storage/filestore"
	mem "pet-profiler/internal/adapters/storage/memory"
	pg "pet-profiler/internal/adapters/storage/postgres"
	"pet-profiler/internal/config"
	"pet-profiler/internal/domain/chat"
	"pet-profiler/internal/domain/gallery"
	"pet-profiler/internal/domain/notes"
	"pet-profiler/internal/domain/pets"
	"pet-profiler/internal/domain/scan"
	"pet-profiler/internal/domain/tips"
	"pet-profiler/internal/middleware"
	"pet-profiler/internal/platform/logger"
	"pet-profiler/internal/ports/backend"

	_ "pet-profiler/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Backend agrupa todo lo que se le pide al servicio remoto.
type Backend interface {
	backend.ScanBackend
	backend.ChatBackend
	backend.TipsBackend
}

type Options struct {
	Config config.Config
	Logger logger.Logger

	// Opcional: si viene, se usa en vez del cliente HTTP armado desde Config.Backend.
	Backend Backend

	// Opcional: DB ya abierta para STORAGE=postgres (si no, se abre con DB_DSN).
	DB *sql.DB
}

// Services es el grafo de dependencias ya armado; lo comparten el server y la CLI.
type Services struct {
	Pets    *pets.Service
	Scan    *scan.Service
	Notes   *notes.Service
	Gallery *gallery.Service
	Chat    *chat.Service
	Tips    *tips.Service
	Images  *filestore.Images
	Log     logger.Logger

	closers []func() error
}

func NewServices(ctx context.Context, opts Options) (*Services, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	b := opts.Backend
	if b == nil {
		c, err := backendhttp.NewClient(backendhttp.Config{
			BaseURL:      cfg.Backend.BaseURL,
			APIKey:       cfg.Backend.APIKey,
			APIKeyHeader: cfg.Backend.APIKeyHeader,
			Timeout:      cfg.Backend.Timeout,
			Endpoints:    cfg.Backend.Endpoints,
		})
		if err != nil {
			return nil, fmt.Errorf("backend client: %w", err)
		}
		b = c
	}

	policy, err := chat.ParsePolicy(cfg.ChatFailurePolicy)
	if err != nil {
		return nil, err
	}

	// Las fotos siempre van a disco, sea cual sea el storage de datos.
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	fs, err := filestore.New(dataDir)
	if err != nil {
		return nil, err
	}

	s := &Services{Images: filestore.NewImages(fs), Log: log}

	var (
		petRepo  pets.Repository
		noteRepo notes.Repository
		tipsRepo tips.Repository
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		db := opts.DB
		if db == nil {
			opened, err := pg.Open(cfg.DBDSN)
			if err != nil {
				return nil, fmt.Errorf("open postgres: %w", err)
			}
			db = opened
			s.closers = append(s.closers, db.Close)
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = s.Close()
			return nil, err
		}
		petRepo = pg.NewPetsRepo(db)
		noteRepo = pg.NewNotesRepo(db)
		tipsRepo = pg.NewTipsRepo(db)
	case config.StorageMemory:
		petRepo = mem.NewPetRepo()
		noteRepo = mem.NewNoteRepo()
		tipsRepo = mem.NewTipsRepo()
	default:
		petRepo = filestore.NewPetRepo(fs)
		noteRepo = filestore.NewNoteRepo(fs)
		tipsRepo = filestore.NewTipsRepo(fs)
	}

	s.Pets = pets.NewService(petRepo, b)
	s.Scan = scan.NewService(b, s.Images, s.Pets, log.With(map[string]any{"module": "scan"}))
	s.Notes = notes.NewService(noteRepo)
	s.Gallery = gallery.NewService(s.Images)
	s.Chat = chat.NewService(b, chat.NewSessions(cfg.ChatHistoryLimit), chat.Options{
		MaxImages:   cfg.ChatMaxImages,
		Concurrency: cfg.ChatConcurrency,
		Policy:      policy,
	}, log.With(map[string]any{"module": "chat"}))
	s.Tips = tips.NewService(b, tipsRepo, cfg.TipsTTL, log.With(map[string]any{"module": "tips"}))

	log.Info("services ready", map[string]any{"storage": string(cfg.Storage), "data_dir": dataDir})
	return s, nil
}

func (s *Services) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}

func NewRouter(s *Services) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(s.Log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	pets.RegisterRoutes(r, s.Pets, s.Images)
	scan.RegisterRoutes(r, s.Scan)
	notes.RegisterRoutes(r, s.Notes, s.Pets)
	gallery.RegisterRoutes(r, s.Gallery, s.Pets)
	chat.RegisterRoutes(r, s.Chat, s.Pets)
	tips.RegisterRoutes(r, s.Tips, s.Pets)

	return r
}
