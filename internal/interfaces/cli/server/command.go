package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mif-gmao/gmao/internal/infrastructure/telemetry"
	"github.com/mif-gmao/gmao/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/mif-gmao/gmao/internal/interfaces/http"
	"github.com/mif-gmao/gmao/internal/shared/goroutine"
)

var skipMigrate bool

func NewCommand(opts *bootstrap.Options, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the GMAO HTTP server and the planning scheduler.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, version)
		},
	}

	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply pending migrations on startup")

	return cmd
}

func run(opts *bootstrap.Options, version string) error {
	rt, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	cfg, log := rt.Config, rt.Log

	log.Infow("starting server",
		"mode", cfg.Server.Mode,
		"version", version,
		"database", cfg.Database.Driver)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if skipMigrate {
		log.Infow("skipping migrations")
	} else if err := rt.Migrate(); err != nil {
		return err
	}

	shutdownTracing, err := telemetry.InitTracing(cfg.Telemetry.Tracing, version)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	container, err := httpRouter.NewContainer(rt.DB, cfg, log, version)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}
	container.SetupRoutes()
	container.StartBackground()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Infow("shutting down server")
	case err := <-serverErr:
		log.Errorw("server failed", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown: %w", err))
	}
	if err := container.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("container shutdown: %w", err))
	}
	if err := shutdownTracing(ctx); err != nil {
		errs = append(errs, fmt.Errorf("tracing shutdown: %w", err))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Infow("server exited gracefully")
	return nil
}
