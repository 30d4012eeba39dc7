package repositories

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"messagely/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testMessage(from, to, body string, sentAt time.Time) Message {
	return Message{
		ID:           uuid.New().String(),
		FromUsername: from,
		ToUsername:   to,
		Body:         body,
		SentAt:       sentAt,
	}
}

func TestMessageRepository_StoreAndGet(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	message := testMessage("alice", "bob", "hi", time.Now().UTC().Truncate(time.Millisecond))
	req.NoError(repository.StoreMessage(message))

	fetched, err := repository.GetMessage(message.ID)
	req.NoError(err)
	req.Equal(message, fetched)
	req.Nil(fetched.ReadAt)

	_, err = repository.GetMessage(uuid.New().String())
	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func TestMessageRepository_MarkReadIsIdempotent(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	message := testMessage("alice", "bob", "hi", time.Now().UTC())
	req.NoError(repository.StoreMessage(message))

	first := time.Now().UTC().Truncate(time.Millisecond)
	readAt, err := repository.MarkRead(message.ID, first)
	req.NoError(err)
	req.Equal(first, readAt)

	// The second transition is a no-op returning the original timestamp.
	again, err := repository.MarkRead(message.ID, first.Add(time.Hour))
	req.NoError(err)
	req.Equal(first, again)

	fetched, err := repository.GetMessage(message.ID)
	req.NoError(err)
	req.NotNil(fetched.ReadAt)
	req.Equal(first, *fetched.ReadAt)

	_, err = repository.MarkRead(uuid.New().String(), time.Now().UTC())
	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func TestMessageRepository_ConcurrentMarkReadConverges(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	message := testMessage("alice", "bob", "hi", time.Now().UTC())
	req.NoError(repository.StoreMessage(message))

	const readers = 16
	stamps := make([]time.Time, readers)
	errs := make([]error, readers)
	base := time.Now().UTC().Truncate(time.Millisecond)
	var wg sync.WaitGroup
	for i := range stamps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stamps[i], errs[i] = repository.MarkRead(message.ID, base.Add(time.Duration(i)*time.Millisecond))
		}(i)
	}
	wg.Wait()

	// The first writer's timestamp wins and every caller observes it.
	for i := range stamps {
		req.NoError(errs[i])
		req.Equal(stamps[0], stamps[i])
	}

	fetched, err := repository.GetMessage(message.ID)
	req.NoError(err)
	req.NotNil(fetched.ReadAt)
	req.Equal(stamps[0], *fetched.ReadAt)
}

func TestMessageRepository_Scans(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC().Truncate(time.Millisecond)
	first := testMessage("alice", "bob", "first", at)
	second := testMessage("alice", "clara", "second", at.Add(time.Minute))
	third := testMessage("bob", "alice", "third", at.Add(2*time.Minute))
	for _, message := range []Message{first, second, third} {
		req.NoError(repository.StoreMessage(message))
	}

	sent, err := repository.MessagesFrom("alice")
	req.NoError(err)
	req.Equal([]Message{first, second}, sent)

	received, err := repository.MessagesTo("alice")
	req.NoError(err)
	req.Equal([]Message{third}, received)

	none, err := repository.MessagesFrom("clara")
	req.NoError(err)
	req.Empty(none)
}

func TestMessageRepository_ScanOrderFollowsSentAt(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC().Truncate(time.Millisecond)
	late := testMessage("alice", "bob", "late", at.Add(time.Hour))
	early := testMessage("alice", "bob", "early", at)

	// Stored out of order; the padded-timestamp index restores it.
	req.NoError(repository.StoreMessage(late))
	req.NoError(repository.StoreMessage(early))

	sent, err := repository.MessagesFrom("alice")
	req.NoError(err)
	req.Equal([]Message{early, late}, sent)
}
