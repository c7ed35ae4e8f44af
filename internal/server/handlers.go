package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"TadawulScout/internal/model"
	"TadawulScout/internal/scanner"
)

const topN = 20

// scanResponse is the market-scan payload: summary statistics plus the
// top-20 securities per strategy ranked by percentage.
type scanResponse struct {
	Success   bool                   `json:"success"`
	Timestamp time.Time              `json:"timestamp"`
	Stats     model.ScanSummary      `json:"stats"`
	HawkTop20 []model.AnalysisReport `json:"hawk_top20"`
	QuickTop  []model.AnalysisReport `json:"quick_top20"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMarketScan(w http.ResponseWriter, r *http.Request) {
	result, ok := s.cache.Load()
	if !ok {
		var err error
		result, err = s.RunScan(r.Context())
		if err != nil {
			s.log.Error().Err(err).Msg("market scan failed")
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "market scan failed"})
			return
		}
	}
	writeJSON(w, http.StatusOK, scanResponse{
		Success:   true,
		Timestamp: result.Timestamp,
		Stats:     result.Summary,
		HawkTop20: scanner.TopByHawk(result.Reports, topN),
		QuickTop:  scanner.TopByQuick(result.Reports, topN),
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	result, err := s.ForceScan(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("forced scan failed")
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "market scan failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "market scan completed",
		"total":   result.Summary.TotalStocks,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no query provided"})
		return
	}

	sec, ok := s.registry.Find(query)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "stock not found"})
		return
	}

	report, err := s.scanner.AnalyzeSecurity(sec)
	if err != nil {
		s.log.Warn().Err(err).Str("symbol", sec.Symbol).Msg("search analysis failed")
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "failed to analyze stock"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    report,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
