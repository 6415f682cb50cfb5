package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pet-profiler/internal/router"
	"pet-profiler/internal/scheduler"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		Long: `Levanta la API HTTP y el refresco periódico de tips (TIPS_REFRESH_CRON).

La documentación queda en /swagger/index.html.`,
		Example: `  # Puerto de PORT (default 8080)
  pet-profiler serve

  # Puerto explícito
  pet-profiler serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, s, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown(log, s)

			if port == "" {
				port = cfg.Port
			}

			sched := scheduler.New(cfg.TipsRefreshCron, s.Pets, s.Tips, log.With(map[string]any{"module": "scheduler"}))
			if err := sched.Start(); err != nil {
				return err
			}
			defer sched.Stop()

			server := &http.Server{
				Addr:              ":" + port,
				Handler:           router.NewRouter(s),
				ReadHeaderTimeout: 5 * time.Second,
				// chat y scan esperan al backend
				WriteTimeout: cfg.Backend.Timeout + 30*time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				log.Info("starting server", map[string]any{"addr": server.Addr})
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case <-cmd.Context().Done():
				log.Info("shutting down server", nil)
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					log.Error("server shutdown failed", map[string]any{"error": err})
					return err
				}
				log.Info("server stopped", nil)
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Puerto (default: PORT)")

	return cmd
}
