package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"messagely/auth"
	"messagely/errors"
	"messagely/services"
)

// Server is the HTTP boundary. It resolves the caller identity via the auth
// middleware and delegates every operation to the access service with that
// identity passed explicitly.
type Server struct {
	log       *slog.Logger
	access    services.IAccessService
	codec     auth.TokenCodec
	startedAt time.Time
}

func NewServer(log *slog.Logger, access services.IAccessService, codec auth.TokenCodec) *Server {
	return &Server{
		log:       log,
		access:    access,
		codec:     codec,
		startedAt: time.Now(),
	}
}

// Routes wires the public endpoints and the token-protected ones. Everything
// behind the auth middleware fails with 401 before any store access.
func (s *Server) Routes() http.Handler {
	public := http.NewServeMux()
	public.HandleFunc("POST /auth/register", s.handleRegister)
	public.HandleFunc("POST /auth/login", s.handleLogin)
	public.HandleFunc("GET /health", s.handleHealth)

	protected := http.NewServeMux()
	protected.HandleFunc("GET /users", s.handleListUsers)
	protected.HandleFunc("GET /users/{username}", s.handleGetUser)
	protected.HandleFunc("GET /users/{username}/to", s.handleMessagesTo)
	protected.HandleFunc("GET /users/{username}/from", s.handleMessagesFrom)
	protected.HandleFunc("POST /messages", s.handleSendMessage)
	protected.HandleFunc("GET /messages/{id}", s.handleGetMessage)
	protected.HandleFunc("POST /messages/{id}/read", s.handleMarkRead)

	public.Handle("/", auth.Middleware(s.log, s.codec)(protected))

	return loggingMiddleware(s.log)(public)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", "error", err)
	}
}

// sendError maps the service error to a status code and a caller-safe
// message; internal details stay in the log.
func (s *Server) sendError(w http.ResponseWriter, err error) {
	status := errors.MapToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
	}
	s.sendJSON(w, errorResponse{
		Error:   http.StatusText(status),
		Message: errors.PublicMessage(err),
	}, status)
}

func (s *Server) caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		s.sendError(w, errors.ErrInvalidToken)
		return "", false
	}
	return caller, true
}
