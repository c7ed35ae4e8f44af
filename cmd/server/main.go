package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"TadawulScout/internal/cache"
	"TadawulScout/internal/collector"
	"TadawulScout/internal/config"
	"TadawulScout/internal/recorder"
	"TadawulScout/internal/registry"
	"TadawulScout/internal/scanner"
	"TadawulScout/internal/server"
)

func main() {
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := newLogger(cfg.Server.DevMode)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	log.Info().Str("config", cfgPath).Msg("TadawulScout starting")

	// Registry
	reg := registry.Default()
	if cfg.Registry.File != "" {
		reg, err = registry.LoadFile(cfg.Registry.File)
		if err != nil {
			log.Fatal().Err(err).Msg("load registry")
		}
	}
	log.Info().Int("securities", reg.Len()).Msg("registry loaded")

	// Fetcher and scanner
	fetcher := collector.NewYahooFetcher(cfg.Market.Suffix, cfg.Proxy)
	log.Info().Str("source", fetcher.Name()).Str("index", cfg.Market.IndexSymbol).Msg("data source ready")

	sc := scanner.New(fetcher, reg, scanner.Config{
		IndexSymbol:  cfg.Market.IndexSymbol,
		LookbackDays: cfg.Market.LookbackDays,
		Concurrency:  cfg.Scan.Concurrency,
	}, log)

	// Cache
	ca := cache.New(cfg.Scan.CacheFile, cfg.CacheTTL(), log)

	// Recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("sqlite recorder unavailable, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := server.New(cfg.Server.Port, sc, ca, rec, reg, log)

	// Optional cron pre-warm keeps the cache fresh without waiting for a
	// request to pay the scan cost.
	if cfg.Scan.PrewarmCron != "" {
		c := cron.New(cron.WithSeconds())
		if _, err := c.AddFunc(cfg.Scan.PrewarmCron, func() {
			if _, err := srv.ForceScan(ctx); err != nil {
				log.Error().Err(err).Msg("prewarm scan failed")
			}
		}); err != nil {
			log.Fatal().Err(err).Str("spec", cfg.Scan.PrewarmCron).Msg("register prewarm cron")
		}
		c.Start()
		defer c.Stop()
		log.Info().Str("spec", cfg.Scan.PrewarmCron).Msg("prewarm schedule registered")
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("http server")
		}
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("TadawulScout stopped")
}

func newLogger(devMode bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if devMode {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
