package cli

import (
	"context"
	"fmt"

	"pet-profiler/internal/config"
	"pet-profiler/internal/platform/logger"
	"pet-profiler/internal/router"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet-profiler",
		Short: "Perfiles de mascotas a partir de una foto",
		Long: `pet-profiler escanea fotos de mascotas contra el backend de análisis,
guarda los perfiles, notas y galería, y expone un chat con experto y
recomendaciones por categoría.

Sin subcomando no hace nada; usar "serve" para levantar la API.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env es opcional
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newTipsCmd())

	return cmd
}

// bootstrap arma config, logger y servicios igual que el server.
func bootstrap(ctx context.Context) (config.Config, logger.Logger, *router.Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	s, err := router.NewServices(ctx, router.Options{Config: cfg, Logger: log})
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, log, s, nil
}

// shutdown cierra los servicios y vacía el logger. Sync sobre stdout puede
// fallar en algunas terminales; no cambia el resultado del comando.
func shutdown(log logger.Logger, s *router.Services) {
	if err := s.Close(); err != nil {
		log.Warn("close services failed", map[string]any{"error": err})
	}
	_ = log.Sync()
}
