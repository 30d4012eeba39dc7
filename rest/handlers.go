package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"messagely/auth"
	"messagely/errors"
)

// POST /auth/register
// {username, password, first_name, last_name, phone} => 201 {token}
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, fmt.Errorf("%w: invalid request body", errors.ErrValidation))
		return
	}

	token, err := s.access.Register(req)
	if err != nil {
		s.sendError(w, err)
		return
	}

	s.log.Info("user registered", "username", req.Username)
	s.sendJSON(w, map[string]any{"token": token}, http.StatusCreated)
}

// POST /auth/login
// {username, password} => {token}
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, fmt.Errorf("%w: invalid request body", errors.ErrValidation))
		return
	}

	token, err := s.access.Login(req)
	if err != nil {
		s.sendError(w, err)
		return
	}

	s.log.Info("user logged in", "username", req.Username)
	s.sendJSON(w, map[string]any{"token": token}, http.StatusOK)
}

// GET /users => {users: [{username, first_name, last_name, phone}, ...]}
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}

	users, err := s.access.ListAccounts(caller)
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSON(w, map[string]any{"users": users}, http.StatusOK)
}

// GET /users/{username} => {user: {username, ..., joined_at, last_login_at}}
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}

	account, err := s.access.GetAccount(caller, r.PathValue("username"))
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSON(w, map[string]any{"user": account}, http.StatusOK)
}

// GET /users/{username}/to => {messages: [{id, from_user, body, sent_at, read_at}, ...]}
func (s *Server) handleMessagesTo(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}

	messages, err := s.access.MessagesTo(caller, r.PathValue("username"))
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSON(w, map[string]any{"messages": messages}, http.StatusOK)
}

// GET /users/{username}/from => {messages: [{id, to_user, body, sent_at, read_at}, ...]}
func (s *Server) handleMessagesFrom(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}

	messages, err := s.access.MessagesFrom(caller, r.PathValue("username"))
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSON(w, map[string]any{"messages": messages}, http.StatusOK)
}

// POST /messages
// {to_username, body} => 201 {message: {id, from_username, to_username, body, sent_at}}
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}

	var req auth.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, fmt.Errorf("%w: invalid request body", errors.ErrValidation))
		return
	}
	if err := auth.ValidateSendMessage(req); err != nil {
		s.sendError(w, err)
		return
	}

	message, err := s.access.SendMessage(caller, req.ToUsername, req.Body)
	if err != nil {
		s.sendError(w, err)
		return
	}

	s.log.Info("message sent", "id", message.ID, "from", message.FromUsername, "to", message.ToUsername)
	s.sendJSON(w, map[string]any{"message": message}, http.StatusCreated)
}

// GET /messages/{id} => {message: {id, body, sent_at, read_at, from_user, to_user}}
func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}

	detail, err := s.access.GetMessage(caller, r.PathValue("id"))
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSON(w, map[string]any{"message": detail}, http.StatusOK)
}

// POST /messages/{id}/read => {read: {id, read_at}}
func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}

	receipt, err := s.access.MarkMessageRead(caller, r.PathValue("id"))
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSON(w, map[string]any{"read": receipt}, http.StatusOK)
}
