//go:generate go run go.uber.org/mock/mockgen -source=access_service.go -destination=../mocks/mock_access_service.go -package=mocks
package services

import (
	"fmt"

	"messagely/auth"
	"messagely/errors"
	"messagely/repositories"
)

// IAccessService fronts every outward-facing operation. The caller identity
// is always an explicit parameter, resolved from the bearer token by the
// transport layer; nothing here relies on ambient request state.
type IAccessService interface {
	Register(req auth.RegisterRequest) (Token, error)
	Login(req auth.LoginRequest) (Token, error)
	ListAccounts(caller string) ([]Profile, error)
	GetAccount(caller, username string) (Account, error)
	SendMessage(caller, toUsername, body string) (repositories.Message, error)
	GetMessage(caller, id string) (MessageDetail, error)
	MarkMessageRead(caller, id string) (ReadReceipt, error)
	MessagesFrom(caller, username string) ([]SentMessage, error)
	MessagesTo(caller, username string) ([]ReceivedMessage, error)
}

type Token string

type AccessService struct {
	identity  IIdentityService
	messaging IMessagingService
	codec     auth.TokenCodec
}

func NewAccessService(identity IIdentityService, messaging IMessagingService,
	codec auth.TokenCodec) IAccessService {
	return &AccessService{
		identity:  identity,
		messaging: messaging,
		codec:     codec,
	}
}

// Register creates the account, then runs the regular login sequence so the
// caller ends registration already logged in with a fresh last_login_at.
func (s *AccessService) Register(req auth.RegisterRequest) (Token, error) {
	if _, err := s.identity.Register(req); err != nil {
		return "", err
	}
	return s.issue(req.Username, req.Password)
}

// Login verifies credentials, updates the login timestamp and mints a token.
// The timestamp update is checked before the token is signed: a failure in
// either step fails the whole operation, never a silent half-commit.
func (s *AccessService) Login(req auth.LoginRequest) (Token, error) {
	if err := auth.ValidateLogin(req); err != nil {
		return "", err
	}
	return s.issue(req.Username, req.Password)
}

func (s *AccessService) issue(username, password string) (Token, error) {
	ok, err := s.identity.Authenticate(username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.ErrInvalidCredentials
	}

	if _, err := s.identity.UpdateLastLogin(username); err != nil {
		return "", err
	}

	token, err := s.codec.Sign(username)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}
	return Token(token), nil
}

// ListAccounts is open to any authenticated identity.
func (s *AccessService) ListAccounts(caller string) ([]Profile, error) {
	return s.identity.ListProfiles()
}

// GetAccount only serves the caller's own account.
func (s *AccessService) GetAccount(caller, username string) (Account, error) {
	if caller != username {
		return Account{}, fmt.Errorf("%w: cannot view another user's account", errors.ErrForbidden)
	}
	return s.identity.GetProfile(username)
}

// SendMessage binds the sender to the authenticated identity. Any existing
// account may be the recipient, the caller included.
func (s *AccessService) SendMessage(caller, toUsername, body string) (repositories.Message, error) {
	return s.messaging.Send(caller, toUsername, body)
}

// GetMessage serves a message only to its sender or its recipient.
func (s *AccessService) GetMessage(caller, id string) (MessageDetail, error) {
	detail, err := s.messaging.GetMessage(id)
	if err != nil {
		return MessageDetail{}, err
	}
	if caller != detail.FromUser.Username && caller != detail.ToUser.Username {
		return MessageDetail{}, fmt.Errorf("%w: not a party to this message", errors.ErrForbidden)
	}
	return detail, nil
}

// MarkMessageRead is reserved for the recipient.
func (s *AccessService) MarkMessageRead(caller, id string) (ReadReceipt, error) {
	detail, err := s.messaging.GetMessage(id)
	if err != nil {
		return ReadReceipt{}, err
	}
	if caller != detail.ToUser.Username {
		return ReadReceipt{}, fmt.Errorf("%w: only the recipient can mark a message read", errors.ErrForbidden)
	}
	return s.messaging.MarkRead(id)
}

// MessagesFrom serves the caller's own outbox.
func (s *AccessService) MessagesFrom(caller, username string) ([]SentMessage, error) {
	if caller != username {
		return nil, fmt.Errorf("%w: cannot view another user's messages", errors.ErrForbidden)
	}
	return s.messaging.MessagesFrom(username)
}

// MessagesTo serves the caller's own inbox.
func (s *AccessService) MessagesTo(caller, username string) ([]ReceivedMessage, error) {
	if caller != username {
		return nil, fmt.Errorf("%w: cannot view another user's messages", errors.ErrForbidden)
	}
	return s.messaging.MessagesTo(username)
}
