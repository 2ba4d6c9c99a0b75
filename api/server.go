package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cfour-labs/connect4-server/game/engine"
	"github.com/cfour-labs/connect4-server/game/service"
	"github.com/cfour-labs/connect4-server/game/session"
	"github.com/cfour-labs/connect4-server/solver"
	"github.com/cfour-labs/connect4-server/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service   service.GameService
	solver    *solver.Solver
	hub       *websocket.Hub
	router    *mux.Router
	staticDir string
}

// NewServer creates a new API server
func NewServer(gameService service.GameService, sv *solver.Solver, hub *websocket.Hub, staticDir string) *Server {
	s := &Server{
		service:   gameService,
		solver:    sv,
		hub:       hub,
		router:    mux.NewRouter(),
		staticDir: staticDir,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Position analysis; the bare path scores the starting position.
	s.router.HandleFunc("/analyse", s.handleAnalyse).Methods("GET")
	s.router.HandleFunc("/analyse/{position}", s.handleAnalyse).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()

	// Game inspection
	api.HandleFunc("/games", s.handleListGames).Methods("GET")
	api.HandleFunc("/games/{id}", s.handleGetGame).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.hub.ServeWS)

	// Static files
	s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.staticDir)))
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	position := mux.Vars(r)["position"]

	if !solver.ValidPosition(position) {
		respondError(w, http.StatusBadRequest, "Position must only contain digits 1-7")
		return
	}

	analysis, err := s.solver.Analyse(r.Context(), position)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.service.ListGames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	view, err := s.service.GameView(r.Context(), engine.GameID(id))
	if err != nil {
		if errors.Is(err, session.ErrGameNotFound) {
			respondError(w, http.StatusNotFound, "Game not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
