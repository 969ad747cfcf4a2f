package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"controlling_microwave/internal/handlers"
	"controlling_microwave/internal/logger"
	"controlling_microwave/internal/repository"
	"controlling_microwave/internal/repository/db"
	"controlling_microwave/internal/server"
	"controlling_microwave/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the oven HTTP API and the tick driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	log := logger.Get(viper.GetString("log.level"))

	signingKey := viper.GetString("auth.signing_key")
	if signingKey == "" {
		return fmt.Errorf("auth.signing_key is not set (config or %s_AUTH_SIGNING_KEY)", envPrefix)
	}

	sqlDB, err := db.InitDB(viper.GetString("db.path"))
	if err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.Config{
		Auth: service.AuthConfig{
			SigningKey: signingKey,
			TokenTTL:   viper.GetDuration("auth.token_ttl"),
		},
		ExploreDepth: viper.GetInt("conformance.depth"),
	}, log)
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Ticker.Run(ctx, viper.GetDuration("tick.interval"))

	srv := server.New(viper.GetString("port"), apiHandler.InitRoutes())
	go func() {
		log.Infow("http_server_started", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(cancel, srv, log)
	return nil
}

// waitForShutdown blocks until SIGINT or SIGTERM, then stops the ticker and
// drains the HTTP server.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
