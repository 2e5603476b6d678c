// Package api exposes one simulation session over HTTP.
// GET endpoints are public (read-only observation of the state).
// POST /action is the control plane: it requires a bearer token and is the
// only path that dispatches transitions into the engine.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ohindex/sovereign-health/internal/catalog"
	"github.com/ohindex/sovereign-health/internal/country"
	"github.com/ohindex/sovereign-health/internal/entropy"
	"github.com/ohindex/sovereign-health/internal/events"
	"github.com/ohindex/sovereign-health/internal/game"
	"github.com/ohindex/sovereign-health/internal/persistence"
)

// Server serves one session. The mutex serializes dispatches: the engine
// assumes a single in-flight transition at a time and the host enforces it.
type Server struct {
	Session  *game.Session
	Deck     *events.Deck
	Rand     *entropy.Source
	DB       *persistence.DB
	Hub      *Hub
	Port     int
	AdminKey string // Bearer token for POST /action. Empty = actions disabled.

	// OnChange runs after every applied transition with the new snapshot.
	// The host uses it to re-arm the auto-advance scheduler.
	OnChange func(game.State)

	mu sync.Mutex
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	actionLimiter := NewRateLimiter(120, time.Minute)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/state", s.handleState)
	mux.HandleFunc("/api/v1/catalog", s.handleCatalog)
	mux.HandleFunc("/api/v1/countries", s.handleCountries)
	mux.HandleFunc("/api/v1/rankings", s.handleRankings)
	mux.HandleFunc("/api/v1/history", s.handleHistory)
	mux.HandleFunc("/api/v1/events", s.handleEventLog)

	mux.HandleFunc("/api/v1/action", s.adminOnly(RateLimitMiddleware(actionLimiter, s.handleAction)))

	if s.Hub != nil {
		mux.HandleFunc("/api/v1/stream", s.Hub.serveWs)
	}

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		if err := http.ListenAndServe(addr, corsMiddleware(mux)); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins. Set
// CORS_ORIGINS to a comma-separated allow list; localhost dev servers are
// always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowed := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				allowed[origin] = true
			}
		}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// adminOnly guards the control plane with a bearer token.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.AdminKey == "" {
			http.Error(w, "actions disabled", http.StatusForbidden)
			return
		}
		auth := r.Header.Get("Authorization")
		if auth != "Bearer "+s.AdminKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response", "error", err)
	}
}

func (s *Server) snapshot() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Session.Snapshot()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"session":   s.Session.ID,
		"phase":     st.Phase,
		"country":   st.Country,
		"cycle":     st.Cycle,
		"year":      st.Year,
		"composite": st.Composite,
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		catalog.PolicyDefinition
		Presentation catalog.Presentation `json:"presentation"`
	}
	defs := catalog.All()
	out := make([]entry, 0, len(defs))
	for _, def := range defs {
		p, _ := catalog.PresentationFor(def.ID)
		out = append(out, entry{PolicyDefinition: def, Presentation: p})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, country.All())
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot().Rankings)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot().History)
}

func (s *Server) handleEventLog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot().EventLog)
}

// actionRequest is the wire form of a transition. Type is the kebab-case
// transition name ("invest-in-policy", "advance-cycle", ...).
type actionRequest struct {
	Type      string  `json:"type"`
	ISO       string  `json:"iso,omitempty"`
	Speed     string  `json:"speed,omitempty"`
	Allocated *[4]int `json:"allocated,omitempty"`
	PolicyID  string  `json:"policy_id,omitempty"`
	Cost      int     `json:"cost,omitempty"`
	EventID   string  `json:"event_id,omitempty"`
	ChoiceID  string  `json:"choice_id,omitempty"`
	Pillar    string  `json:"pillar,omitempty"`
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	action, err := s.decodeAction(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	result := s.Session.Dispatch(action)
	st := s.Session.Snapshot()
	s.mu.Unlock()

	if result.Applied {
		s.afterApply(st)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"result": result,
		"state":  st,
	})
}

// afterApply persists the snapshot, streams it, and notifies the host.
func (s *Server) afterApply(st game.State) {
	if s.DB != nil {
		if err := s.DB.SaveSnapshot(s.Session.ID, st); err != nil {
			slog.Error("snapshot save failed", "error", err)
		}
		if n := len(st.History); n > 0 {
			if err := s.DB.AppendHistory(s.Session.ID, st.History[n-1]); err != nil {
				slog.Error("history save failed", "error", err)
			}
		}
	}
	if s.Hub != nil {
		if blob, err := json.Marshal(st); err == nil {
			s.Hub.Broadcast(blob)
		}
	}
	if s.OnChange != nil {
		s.OnChange(st)
	}
}

// DispatchLocked runs one transition under the server's lock, with the same
// persistence and streaming side effects as the action endpoint. The host
// scheduler uses it for auto-advance ticks.
func (s *Server) DispatchLocked(action game.Action) game.Result {
	s.mu.Lock()
	result := s.Session.Dispatch(action)
	st := s.Session.Snapshot()
	s.mu.Unlock()

	if result.Applied {
		s.afterApply(st)
	}
	return result
}

func (s *Server) decodeAction(req actionRequest) (game.Action, error) {
	switch req.Type {
	case "select-country":
		return game.SelectCountry{ISO: req.ISO}, nil
	case "start":
		return game.Start{}, nil
	case "pause":
		return game.Pause{}, nil
	case "resume":
		return game.Resume{}, nil
	case "set-speed":
		return game.SetSpeed{Speed: game.Speed(req.Speed)}, nil
	case "toggle-auto-advance":
		return game.ToggleAutoAdvance{}, nil
	case "allocate-budget":
		if req.Allocated == nil {
			return nil, fmt.Errorf("allocate-budget requires allocated")
		}
		return game.AllocateBudget{Allocated: *req.Allocated}, nil
	case "invest-in-policy":
		return game.InvestInPolicy{PolicyID: req.PolicyID, Cost: req.Cost}, nil
	case "advance-cycle":
		return game.AdvanceCycle{}, nil
	case "trigger-event":
		ev, err := s.pickEvent(req.EventID)
		if err != nil {
			return nil, err
		}
		return game.TriggerEvent{Event: ev}, nil
	case "resolve-event":
		return game.ResolveEvent{ChoiceID: req.ChoiceID}, nil
	case "dismiss-event":
		return game.DismissEvent{}, nil
	case "select-pillar":
		p, ok := catalog.PillarFromString(req.Pillar)
		if !ok {
			return nil, fmt.Errorf("unknown pillar %q", req.Pillar)
		}
		return game.SelectPillar{Pillar: p}, nil
	case "toggle-world-map":
		return game.ToggleWorldMap{}, nil
	case "end-game":
		return game.EndGame{}, nil
	case "reset-game":
		return game.ResetGame{}, nil
	}
	return nil, fmt.Errorf("unknown action type %q", req.Type)
}

// pickEvent returns a named deck event, or draws one when no id is given.
func (s *Server) pickEvent(eventID string) (game.GameEvent, error) {
	if s.Deck == nil {
		return game.GameEvent{}, fmt.Errorf("no event deck loaded")
	}
	if eventID == "" {
		return s.Deck.Draw(s.Rand.Float()), nil
	}
	for _, ev := range s.Deck.All() {
		if ev.ID == eventID {
			return ev, nil
		}
	}
	return game.GameEvent{}, fmt.Errorf("unknown event %q", eventID)
}
