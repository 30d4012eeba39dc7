//go:generate go run go.uber.org/mock/mockgen -source=messaging_service.go -destination=../mocks/mock_messaging_service.go -package=mocks
package services

import (
	"fmt"
	"time"

	"messagely/errors"
	"messagely/moderation"
	"messagely/repositories"

	"github.com/google/uuid"
)

type IMessagingService interface {
	Send(fromUsername, toUsername, body string) (repositories.Message, error)
	GetMessage(id string) (MessageDetail, error)
	MarkRead(id string) (ReadReceipt, error)
	MessagesFrom(username string) ([]SentMessage, error)
	MessagesTo(username string) ([]ReceivedMessage, error)
}

// MessageDetail joins both parties' profiles at read time, so it always
// reflects their current state.
type MessageDetail struct {
	ID       string     `json:"id"`
	Body     string     `json:"body"`
	SentAt   time.Time  `json:"sent_at"`
	ReadAt   *time.Time `json:"read_at"`
	FromUser Profile    `json:"from_user"`
	ToUser   Profile    `json:"to_user"`
}

type SentMessage struct {
	ID     string     `json:"id"`
	ToUser Profile    `json:"to_user"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at"`
}

type ReceivedMessage struct {
	ID       string     `json:"id"`
	FromUser Profile    `json:"from_user"`
	Body     string     `json:"body"`
	SentAt   time.Time  `json:"sent_at"`
	ReadAt   *time.Time `json:"read_at"`
}

type ReadReceipt struct {
	ID     string    `json:"id"`
	ReadAt time.Time `json:"read_at"`
}

type MessagingService struct {
	identity          IIdentityService
	messageRepository repositories.IMessageRepository
	moderator         *moderation.Moderator
}

func NewMessagingService(identity IIdentityService, repo repositories.IMessageRepository,
	moderator *moderation.Moderator) IMessagingService {
	return &MessagingService{
		identity:          identity,
		messageRepository: repo,
		moderator:         moderator,
	}
}

// Send creates a message with read_at unset. The recipient must resolve to an
// existing account; an unknown recipient is the sender's input error, not a
// lookup failure. Sending to oneself is allowed. The body is run through the
// moderator before it is persisted.
func (s *MessagingService) Send(fromUsername, toUsername, body string) (repositories.Message, error) {
	if body == "" {
		return repositories.Message{}, fmt.Errorf("%w: body is required", errors.ErrValidation)
	}

	if _, err := s.identity.GetProfile(toUsername); err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			return repositories.Message{}, fmt.Errorf("%w: unknown recipient %q", errors.ErrValidation, toUsername)
		}
		return repositories.Message{}, err
	}

	message := repositories.Message{
		ID:           uuid.New().String(),
		FromUsername: fromUsername,
		ToUsername:   toUsername,
		Body:         s.moderator.Censor(body),
		SentAt:       time.Now().UTC(),
	}

	if err := s.messageRepository.StoreMessage(message); err != nil {
		return repositories.Message{}, err
	}
	return message, nil
}

func (s *MessagingService) GetMessage(id string) (MessageDetail, error) {
	message, err := s.messageRepository.GetMessage(id)
	if err != nil {
		return MessageDetail{}, err
	}

	fromUser, err := s.profileOf(message.FromUsername)
	if err != nil {
		return MessageDetail{}, err
	}
	toUser, err := s.profileOf(message.ToUsername)
	if err != nil {
		return MessageDetail{}, err
	}

	return MessageDetail{
		ID:       message.ID,
		Body:     message.Body,
		SentAt:   message.SentAt,
		ReadAt:   message.ReadAt,
		FromUser: fromUser,
		ToUser:   toUser,
	}, nil
}

// MarkRead transitions read_at exactly once. A second invocation is a no-op
// returning the original timestamp; the repository enforces the monotonic
// transition, this layer only shapes the receipt.
func (s *MessagingService) MarkRead(id string) (ReadReceipt, error) {
	readAt, err := s.messageRepository.MarkRead(id, time.Now().UTC())
	if err != nil {
		return ReadReceipt{}, err
	}
	return ReadReceipt{ID: id, ReadAt: readAt}, nil
}

func (s *MessagingService) MessagesFrom(username string) ([]SentMessage, error) {
	if _, err := s.identity.GetProfile(username); err != nil {
		return nil, err
	}

	messages, err := s.messageRepository.MessagesFrom(username)
	if err != nil {
		return nil, err
	}

	views := make([]SentMessage, 0, len(messages))
	for _, message := range messages {
		toUser, err := s.profileOf(message.ToUsername)
		if err != nil {
			return nil, err
		}
		views = append(views, SentMessage{
			ID:     message.ID,
			ToUser: toUser,
			Body:   message.Body,
			SentAt: message.SentAt,
			ReadAt: message.ReadAt,
		})
	}
	return views, nil
}

func (s *MessagingService) MessagesTo(username string) ([]ReceivedMessage, error) {
	if _, err := s.identity.GetProfile(username); err != nil {
		return nil, err
	}

	messages, err := s.messageRepository.MessagesTo(username)
	if err != nil {
		return nil, err
	}

	views := make([]ReceivedMessage, 0, len(messages))
	for _, message := range messages {
		fromUser, err := s.profileOf(message.FromUsername)
		if err != nil {
			return nil, err
		}
		views = append(views, ReceivedMessage{
			ID:       message.ID,
			FromUser: fromUser,
			Body:     message.Body,
			SentAt:   message.SentAt,
			ReadAt:   message.ReadAt,
		})
	}
	return views, nil
}

func (s *MessagingService) profileOf(username string) (Profile, error) {
	account, err := s.identity.GetProfile(username)
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		Username:  account.Username,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Phone:     account.Phone,
	}, nil
}
