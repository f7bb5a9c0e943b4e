package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/fortuna/warroom/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Refresher produces a fresh dashboard on every call.
type Refresher interface {
	Refresh(ctx context.Context, opts service.RefreshOptions) (*service.Dashboard, error)
}

// Message types pushed to clients.
const (
	TypeDashboard = "dashboard"
	TypeError     = "error"
)

// Envelope is the frame every client receives after a refresh.
type Envelope struct {
	Type      string             `json:"type"`
	Dashboard *service.Dashboard `json:"dashboard,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// RefreshRequest is the optional body of an inbound message. Any other text
// triggers a refresh with default options.
type RefreshRequest struct {
	Group string `json:"group"`
}

// Server represents the WebSocket server
type Server struct {
	port      string
	server    *http.Server
	hub       *Hub
	dashboard Refresher
	timeout   time.Duration
	logger    *logrus.Entry
}

// NewServer creates a new WebSocket server
func NewServer(port string, dashboard Refresher, logger *logrus.Logger) *Server {
	s := &Server{
		port:      port,
		hub:       NewHub(logger),
		dashboard: dashboard,
		timeout:   60 * time.Second,
		logger:    logger.WithField("component", "ws"),
	}
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Routes returns the server's HTTP handler
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/dashboard", s.handleDashboard)
	mux.HandleFunc("/ws/health", s.handleHealth)
	return mux
}

// Start starts the hub and the WebSocket server
func (s *Server) Start() error {
	// Start the hub in a goroutine
	go s.hub.Run()

	s.logger.WithField("port", s.port).Info("WebSocket server listening")
	return s.server.ListenAndServe()
}

// handleDashboard upgrades a connection and subscribes it to refreshes
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to upgrade connection")
		return
	}

	client := &Client{
		hub:       s.hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		onMessage: s.onMessage,
	}

	if !s.hub.Register(client) {
		conn.Close()
		return
	}

	// Start client goroutines
	go client.writePump()
	go client.readPump()
}

// handleHealth returns WebSocket server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status": "healthy", "clients": %d}`, s.hub.ClientCount())
}

// onMessage runs one refresh and broadcasts the outcome to every client.
func (s *Server) onMessage(_ *Client, message []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	frame, err := json.Marshal(s.refresh(ctx, parseRefreshRequest(message)))
	if err != nil {
		s.logger.WithError(err).Error("Failed to encode dashboard frame")
		return
	}
	s.Broadcast(frame)
}

func (s *Server) refresh(ctx context.Context, opts service.RefreshOptions) Envelope {
	d, err := s.dashboard.Refresh(ctx, opts)
	if err != nil {
		s.logger.WithError(err).Error("Dashboard refresh failed")
		return Envelope{Type: TypeError, Error: service.Banner(err)}
	}
	return Envelope{Type: TypeDashboard, Dashboard: d}
}

func parseRefreshRequest(message []byte) service.RefreshOptions {
	var req RefreshRequest
	if err := json.Unmarshal(message, &req); err != nil {
		return service.RefreshOptions{}
	}
	return service.RefreshOptions{GroupByPosition: strings.EqualFold(req.Group, "position")}
}

// Broadcast sends a frame to all connected clients
func (s *Server) Broadcast(data []byte) {
	s.hub.Broadcast(data)
}

// Shutdown gracefully shuts down the server and disconnects clients
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.hub.Stop()
	return s.server.Shutdown(ctx)
}
