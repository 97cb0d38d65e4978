package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/jpretorius/email-gateway/internal/catalog"
	"github.com/jpretorius/email-gateway/internal/config"
	"github.com/jpretorius/email-gateway/internal/db"
	"github.com/jpretorius/email-gateway/internal/dispatcher"
	httpSrv "github.com/jpretorius/email-gateway/internal/http"
	"github.com/jpretorius/email-gateway/internal/logger"
	"github.com/jpretorius/email-gateway/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger.Init(cfg.Log.Level)
		defer func() { _ = logger.Log.Sync() }()

		// Every organization must resolve to a template in every
		// language before we accept a single request.
		if err := catalog.Validate(); err != nil {
			return err
		}

		metrics.MustRegister(prometheus.DefaultRegisterer)

		var rds *redis.Client
		if cfg.Redis.Addr != "" {
			rds, err = db.NewRedisClient(db.RedisOpts{
				Addr:        cfg.Redis.Addr,
				Password:    cfg.Redis.Password,
				DB:          cfg.Redis.DB,
				DialTimeout: cfg.Redis.DialTimeout,
			})
			if err != nil {
				// rate limiting degrades to allow-all without redis
				logger.Log.Warn("redis unavailable, rate limiting disabled")
				rds = nil
			} else {
				defer func() { _ = rds.Close() }()
			}
		}

		provider := dispatcher.NewSendGridProvider(cfg.Provider.URL, cfg.Provider.APIKey, cfg.Provider.TimeoutMs, logger.Log)
		if !provider.Configured() {
			logger.Log.Warn("provider api key missing, sends will fail until configured")
		}
		gw := dispatcher.New(provider, logger.Log)

		server := httpSrv.NewServer(cfg, gw, rds)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start(cfg.HTTP.Addr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			log.Printf("signal received: %s, shutting down...", sig)
		case err := <-errCh:
			if err != nil {
				log.Printf("http server exited: %v", err)
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)

		return nil
	},
}
