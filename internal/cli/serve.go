package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lazypower/pond/internal/engine"
	"github.com/lazypower/pond/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, db, log, err := openStack()
	if err != nil {
		return err
	}
	defer db.Close()
	defer log.Sync()

	eng := engine.New(db, log)
	if cfg.Engine.EventChance > 0 {
		eng.EventChance = cfg.Engine.EventChance
	}
	eng.StartSweepTimer(time.Duration(cfg.Engine.SweepInterval) * time.Second)
	defer eng.Stop()

	srv := server.New(db, eng, log, VersionString())
	addr := cfg.ListenAddr()

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("pond serving",
			zap.String("addr", addr),
			zap.String("db", db.Path))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	<-done
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return httpServer.Shutdown(ctx)
}
