//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"messagely/errors"

	"github.com/dgraph-io/badger/v4"
)

type IMessageRepository interface {
	StoreMessage(message Message) error
	GetMessage(id string) (Message, error)
	MarkRead(id string, at time.Time) (time.Time, error)
	MessagesFrom(username string) ([]Message, error)
	MessagesTo(username string) ([]Message, error)
}

// Message is the stored message record. ReadAt stays nil until the recipient
// marks the message read, and never reverts afterwards.
type Message struct {
	ID           string     `json:"id"`
	FromUsername string     `json:"from_username"`
	ToUsername   string     `json:"to_username"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at"`
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) IMessageRepository {
	return &MessageRepository{db: db, log: log}
}

func messageKey(id string) []byte {
	return []byte("msg:" + id)
}

// Index keys are "from:{username}:{timestamp_padded}:{id}" (and the "to:"
// twin) so that a prefix scan per user returns messages in chronological
// order. The 19-digit zero padding keeps lexicographic order aligned with
// time; the id disambiguates two messages in the same nanosecond. Index
// entries hold only the message id: the primary record under "msg:{id}" is
// the single source of truth, so marking a message read touches one key.
func indexKey(direction, username string, sentAt time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%019d:%s", direction, username, sentAt.UnixNano(), id))
}

// StoreMessage persists the record and both scan indexes in one transaction.
func (m MessageRepository) StoreMessage(message Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return runUpdate(m.db, func(txn *badger.Txn) error {
		if err := txn.Set(messageKey(message.ID), data); err != nil {
			return err
		}
		id := []byte(message.ID)
		if err := txn.Set(indexKey("from", message.FromUsername, message.SentAt, message.ID), id); err != nil {
			return err
		}
		return txn.Set(indexKey("to", message.ToUsername, message.SentAt, message.ID), id)
	})
}

func (m MessageRepository) GetMessage(id string) (Message, error) {
	var message Message

	err := m.db.View(func(txn *badger.Txn) error {
		return getMessageTxn(txn, id, &message)
	})
	if err != nil {
		return Message{}, err
	}
	return message, nil
}

// MarkRead transitions read_at from nil to at, exactly once. Re-invoking on
// an already-read message returns the stored timestamp unchanged: the read
// and the conditional write share one transaction, so concurrent callers
// converge on the first writer's value.
func (m MessageRepository) MarkRead(id string, at time.Time) (time.Time, error) {
	var readAt time.Time

	err := runUpdate(m.db, func(txn *badger.Txn) error {
		var message Message
		if err := getMessageTxn(txn, id, &message); err != nil {
			return err
		}

		if message.ReadAt != nil {
			readAt = *message.ReadAt
			return nil
		}

		message.ReadAt = &at
		readAt = at
		data, err := json.Marshal(message)
		if err != nil {
			return err
		}
		return txn.Set(messageKey(id), data)
	})
	if err != nil {
		return time.Time{}, err
	}
	return readAt, nil
}

func (m MessageRepository) MessagesFrom(username string) ([]Message, error) {
	return m.scan("from", username)
}

func (m MessageRepository) MessagesTo(username string) ([]Message, error) {
	return m.scan("to", username)
}

func (m MessageRepository) scan(direction, username string) ([]Message, error) {
	var messages []Message

	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("%s:%s:", direction, username))
		options := badger.DefaultIteratorOptions
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var id string
			err := it.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			})
			if err != nil {
				return err
			}

			var message Message
			if err := getMessageTxn(txn, id, &message); err != nil {
				m.log.Warn("dangling message index", "key", string(it.Item().Key()), "error", err)
				continue
			}
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func getMessageTxn(txn *badger.Txn, id string, out *Message) error {
	item, err := txn.Get(messageKey(id))
	if err == badger.ErrKeyNotFound {
		return errors.ErrMessageNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}
