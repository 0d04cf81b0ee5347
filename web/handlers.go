/* handlers.go
 * Contains the HTTP handlers for the standings, opponents and pairings endpoints
 * Author: Zachary Bower
 */

package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"swiss-tournament/api/api"
	"swiss-tournament/api/logic"
	"swiss-tournament/api/shared"
	"swiss-tournament/api/store"

	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 5
	defaultBurst             = 10

	modeAllow = "allow"
	modeAvoid = "avoid"
)

// NewServer builds a Server from the config
func NewServer(cfg Config) *Server {
	rps, burst := cfg.RequestsPerSecond, cfg.Burst
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}

	return &Server{
		api:     cfg.API,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		metrics: newMetrics(),
	}
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /standings", s.StandingsHandler)
	mux.HandleFunc("GET /pairings", s.PairingsHandler)
	mux.HandleFunc("GET /players/{id}/opponents", s.OpponentsHandler)
	mux.Handle("GET /metrics", s.metrics.handler())
	return s.rateLimit(mux)
}

// rateLimit rejects requests with 429 once the shared limiter is exhausted
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, errors.New("too many requests"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// StandingsHandler returns the players ranked by wins
func (s *Server) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	standings, err := s.api.PlayerStandings()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, standings)
}

// PairingsHandler returns the pairings for the next round. rematch=avoid uses the rematch avoiding strategy,
// anything else (or nothing) pairs adjacent players
func (s *Server) PairingsHandler(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("rematch")
	if mode == "" {
		mode = modeAllow
	}

	var (
		report api.PairingReport
		err    error
	)
	switch mode {
	case modeAllow:
		report, err = s.api.SwissPairings()
	case modeAvoid:
		report, err = s.api.SwissPairingsNoRematch()
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("rematch must be %q or %q", modeAllow, modeAvoid))
		return
	}
	s.metrics.observePairing(mode, len(report.Unmatched), err)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	if report.Pairings == nil {
		report.Pairings = []shared.Pairing{}
	}
	writeJSON(w, http.StatusOK, report)
}

// OpponentsHandler returns the ids and names of the players someone has already played
func (s *Server) OpponentsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid player id %q", r.PathValue("id")))
		return
	}

	opponents, err := s.api.PlayerOpponents(id)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	res := opponentsResponse{ID: id, Opponents: []int64{}, Names: []string{}}
	for _, o := range opponents {
		res.Opponents = append(res.Opponents, o.ID)
		res.Names = append(res.Names, o.Name)
	}
	writeJSON(w, http.StatusOK, res)
}

// statusFor maps api errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, logic.ErrUnknownCompetitor):
		return http.StatusNotFound
	case errors.Is(err, logic.ErrOddPlayerCount):
		return http.StatusConflict
	case errors.Is(err, store.ErrDataUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.Println("request failed:", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("failed to encode response:", err)
	}
}
