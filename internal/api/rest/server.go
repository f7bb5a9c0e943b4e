package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/fortuna/warroom/internal/league"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, dashboard Refresher, teams *league.Directory, logger *logrus.Logger) *Server {
	handler := NewHandler(dashboard, teams, logger)

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           NewRouter(handler, logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewRouter wires routes and middleware onto a mux router. CORS wraps the
// router so preflight requests never reach route matching.
func NewRouter(handler *Handler, logger *logrus.Logger) http.Handler {
	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggingMiddleware(logger))

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// Dashboard views
	api.HandleFunc("/dashboard", handler.GetDashboard).Methods("GET")
	api.HandleFunc("/roster", handler.GetRoster).Methods("GET")
	api.HandleFunc("/streamers/skaters", handler.GetSkaterTargets).Methods("GET")
	api.HandleFunc("/streamers/goalies", handler.GetGoalieTargets).Methods("GET")

	// Schedule
	api.HandleFunc("/schedule/summary", handler.GetScheduleSummary).Methods("GET")
	api.HandleFunc("/schedule/matrix", handler.GetScheduleMatrix).Methods("GET")
	api.HandleFunc("/schedule/weights", handler.GetScheduleWeights).Methods("GET")

	// Teams
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/teams/{abbrev}", handler.GetTeam).Methods("GET")

	return CORSMiddleware(router)
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
