// Package server exposes the scan engine over HTTP: a cache-aware
// full-market scan, a forced refresh and a single-security search.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"TadawulScout/internal/cache"
	"TadawulScout/internal/model"
	"TadawulScout/internal/recorder"
	"TadawulScout/internal/registry"
	"TadawulScout/internal/scanner"
)

// Server is the HTTP layer over the scanner, cache and recorder.
type Server struct {
	router   *chi.Mux
	server   *http.Server
	log      zerolog.Logger
	scanner  *scanner.Scanner
	cache    *cache.Cache
	recorder recorder.Recorder
	registry *registry.Registry

	scanMu sync.Mutex // serializes full-market scans
}

// New wires the server and its routes.
func New(port int, sc *scanner.Scanner, ca *cache.Cache, rec recorder.Recorder, reg *registry.Registry, log zerolog.Logger) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		log:      log,
		scanner:  sc,
		cache:    ca,
		recorder: rec,
		registry: reg,
	}

	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/api/market-scan", s.handleMarketScan)
	s.router.Get("/api/refresh", s.handleRefresh)
	s.router.Get("/api/search", s.handleSearch)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // a cold scan fetches the whole market
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start begins serving. It blocks until the server stops.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("http server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// RunScan performs a full scan, caches it and records it. Concurrent
// callers are serialized so at most one scan runs at a time; the cron
// pre-warm job and the refresh endpoint both come through here.
func (s *Server) RunScan(ctx context.Context) (*model.ScanResult, error) {
	s.scanMu.Lock()
	defer s.scanMu.Unlock()

	// A scan may have completed while this caller waited for the lock.
	if cached, ok := s.cache.Load(); ok {
		return cached, nil
	}

	result, err := s.scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Save(result); err != nil {
		s.log.Error().Err(err).Msg("cache save failed")
	}
	if err := s.recorder.RecordScan(result); err != nil {
		s.log.Error().Err(err).Msg("record scan failed")
	}
	return result, nil
}

// ForceScan bypasses and rewrites the cache.
func (s *Server) ForceScan(ctx context.Context) (*model.ScanResult, error) {
	s.scanMu.Lock()
	defer s.scanMu.Unlock()

	result, err := s.scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Save(result); err != nil {
		s.log.Error().Err(err).Msg("cache save failed")
	}
	if err := s.recorder.RecordScan(result); err != nil {
		s.log.Error().Err(err).Msg("record scan failed")
	}
	return result, nil
}
