// Package http exposes a read-only JSON query API over a validated MDP.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/autodidactus/mdp"
	"github.com/autodidactus/mdp/internal/presentation/graph"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves queries against one immutable process. The MDP needs no
// locking, so handlers share it freely.
type Server struct {
	m      *mdp.MDP
	logger *slog.Logger

	registry *prometheus.Registry
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the structured logger used for request errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for m, including a /metrics endpoint
// backed by the server's own Prometheus registry.
func NewHandler(m *mdp.MDP, opts ...Option) http.Handler {
	s := &Server{
		m:        m,
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mdp_queries_total",
				Help: "Total number of MDP queries served",
			},
			[]string{"op"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "mdp_query_duration_seconds",
				Help: "Duration of MDP query handling",
			},
			[]string{"op"},
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.registry.MustRegister(s.queries, s.duration)

	r := chi.NewRouter()

	r.Get("/states", s.instrument("states", s.handleStates))
	r.Get("/actions", s.instrument("actions", s.handleActions))
	r.Get("/states/{name}/actions", s.instrument("actions_from_state", s.handleActionsFromState))
	r.Get("/states/{name}/incoming", s.instrument("actions_to_state", s.handleActionsToState))
	r.Get("/actions/{name}/successors", s.instrument("states_from_action", s.handleStatesFromAction))
	r.Get("/actions/{name}/sources", s.instrument("states_to_action", s.handleStatesToAction))
	r.Get("/actions/{name}/rewards", s.instrument("rewards", s.handleRewards))
	r.Get("/actions/{name}/probabilities", s.instrument("probabilities", s.handleProbabilities))
	r.Get("/graph", s.instrument("graph", s.handleGraph))
	r.Get("/graph/mermaid", s.instrument("mermaid", s.handleMermaid))
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) instrument(op string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		handler(w, r)
		s.queries.WithLabelValues(op).Inc()
		s.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

func namesOf(ids []mdp.Identity) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Name()
	}
	return out
}

func byName(values map[mdp.Identity]float64) map[string]float64 {
	out := make(map[string]float64, len(values))
	for id, v := range values {
		out[id.Name()] = v
	}
	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// writeError maps the query taxonomy onto HTTP statuses: unknown
// identities are 404, anything else 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, mdp.ErrUnknownState) || errors.Is(err, mdp.ErrUnknownAction) {
		status = http.StatusNotFound
	}
	s.logger.Warn("query failed", "err", err, "status", status)
	http.Error(w, err.Error(), status)
}

func (s *Server) handleStates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{"states": namesOf(s.m.States())})
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{"actions": namesOf(s.m.Actions())})
}

func (s *Server) handleActionsFromState(w http.ResponseWriter, r *http.Request) {
	state, err := mdp.NewState(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	actions, err := s.m.ActionsFromState(state)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]any{"state": state.Name(), "actions": namesOf(actions)})
}

func (s *Server) handleActionsToState(w http.ResponseWriter, r *http.Request) {
	state, err := mdp.NewState(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	actions, err := s.m.ActionsToState(state)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]any{"state": state.Name(), "actions": namesOf(actions)})
}

func (s *Server) handleStatesFromAction(w http.ResponseWriter, r *http.Request) {
	action, err := mdp.NewAction(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	states, err := s.m.StatesFromAction(action)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]any{"action": action.Name(), "states": namesOf(states)})
}

func (s *Server) handleStatesToAction(w http.ResponseWriter, r *http.Request) {
	action, err := mdp.NewAction(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	states, err := s.m.StatesToAction(action)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]any{"action": action.Name(), "states": namesOf(states)})
}

func (s *Server) handleRewards(w http.ResponseWriter, r *http.Request) {
	action, err := mdp.NewAction(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	rewards, err := s.m.StateRewardMap(action)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]any{"action": action.Name(), "rewards": byName(rewards)})
}

func (s *Server) handleProbabilities(w http.ResponseWriter, r *http.Request) {
	action, err := mdp.NewAction(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	probabilities, err := s.m.StateProbabilityMap(action)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]any{"action": action.Name(), "probabilities": byName(probabilities)})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(s.m.String())); err != nil {
		s.logger.Error("graph write failed", "error", err)
	}
}

func (s *Server) handleMermaid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(graph.GenerateMermaid(s.m))); err != nil {
		s.logger.Error("mermaid write failed", "error", err)
	}
}
