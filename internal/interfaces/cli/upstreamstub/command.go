// Package upstreamstub serves canned console API responses for local development.
package upstreamstub

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/orris-inc/statsboard/internal/infrastructure/config"
	"github.com/orris-inc/statsboard/internal/shared/logger"
)

var (
	addr        string
	fixturePath string
	configFile  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upstream-stub",
		Short: "Serve canned console API responses",
		Long:  `Serve the server totals and ticket endpoints of the console API from a YAML fixture.`,
		RunE:  run,
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVarP(&fixturePath, "fixture", "f", "", "Fixture file (defaults to the built-in fixture)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to the config file providing the upstream paths")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("", configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, true); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.WithComponent("upstream-stub")

	fixture, err := LoadFixture(fixturePath)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(fixture, cfg.Upstream.ServerTotalPath, cfg.Upstream.TicketPath, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infow("upstream stub listening",
			"address", addr,
			"server_total_path", cfg.Upstream.ServerTotalPath,
			"ticket_path", cfg.Upstream.TicketPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("failed to start upstream stub", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
