package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"messagely/auth"
	"messagely/moderation"
	"messagely/repositories"
	"messagely/rest"
	"messagely/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// startServer assembles the full stack against a throwaway Badger directory.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	req := require.New(t)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	params := auth.DefaultHashParams()
	params.Memory = 8 * 1024
	params.Iterations = 1
	hasher := auth.NewHasher(params)
	codec := auth.NewTokenCodec("e2e-secret", time.Hour)

	moderator, err := moderation.NewModerator(nil, '*')
	req.NoError(err)

	identity, err := services.NewIdentityService(repositories.NewUserRepository(db), hasher)
	req.NoError(err)
	messaging := services.NewMessagingService(identity, repositories.NewMessageRepository(db, slog.Default()), moderator)
	access := services.NewAccessService(identity, messaging, codec)

	server := httptest.NewServer(rest.NewServer(slog.Default(), access, codec).Routes())
	t.Cleanup(server.Close)
	return server
}

type client struct {
	t       *testing.T
	baseURL string
	debug   bool
}

func newClient(t *testing.T, server *httptest.Server) *client {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	return &client{t: t, baseURL: server.URL, debug: cfg.DebugJSON}
}

func (c *client) do(method, path, token string, payload any) (int, map[string]json.RawMessage) {
	c.t.Helper()
	req := require.New(c.t)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		req.NoError(err)
		body = bytes.NewReader(data)
	}

	request, err := http.NewRequest(method, c.baseURL+path, body)
	req.NoError(err)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := http.DefaultClient.Do(request)
	req.NoError(err)
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	req.NoError(err)
	if c.debug {
		fmt.Printf("%s %s -> %d %s\n", method, path, response.StatusCode, raw)
	}

	var parsed map[string]json.RawMessage
	if len(raw) > 0 {
		req.NoError(json.Unmarshal(raw, &parsed))
	}
	return response.StatusCode, parsed
}

func (c *client) register(username, password string) string {
	c.t.Helper()
	req := require.New(c.t)

	status, body := c.do(http.MethodPost, "/auth/register", "", map[string]string{
		"username": username, "password": password,
		"first_name": "Test", "last_name": "User", "phone": "+15550000",
	})
	req.Equal(http.StatusCreated, status)

	var token string
	req.NoError(json.Unmarshal(body["token"], &token))
	req.NotEmpty(token)
	return token
}

func TestMessageLifecycle(t *testing.T) {
	req := require.New(t)
	server := startServer(t)
	c := newClient(t, server)

	aliceToken := c.register("alice", "pw1")
	bobToken := c.register("bob", "pw2")

	// alice sends bob a message; read_at starts unset
	status, body := c.do(http.MethodPost, "/messages", aliceToken, map[string]string{
		"to_username": "bob", "body": "hi",
	})
	req.Equal(http.StatusCreated, status)

	var message struct {
		ID     string     `json:"id"`
		From   string     `json:"from_username"`
		To     string     `json:"to_username"`
		Body   string     `json:"body"`
		ReadAt *time.Time `json:"read_at"`
	}
	req.NoError(json.Unmarshal(body["message"], &message))
	req.Equal("alice", message.From)
	req.Equal("bob", message.To)
	req.Nil(message.ReadAt)

	// bob marks it read
	status, body = c.do(http.MethodPost, "/messages/"+message.ID+"/read", bobToken, nil)
	req.Equal(http.StatusOK, status)

	var receipt struct {
		ID     string    `json:"id"`
		ReadAt time.Time `json:"read_at"`
	}
	req.NoError(json.Unmarshal(body["read"], &receipt))
	req.False(receipt.ReadAt.IsZero())

	// marking again is a no-op returning the original timestamp
	status, body = c.do(http.MethodPost, "/messages/"+message.ID+"/read", bobToken, nil)
	req.Equal(http.StatusOK, status)

	var second struct {
		ReadAt time.Time `json:"read_at"`
	}
	req.NoError(json.Unmarshal(body["read"], &second))
	req.Equal(receipt.ReadAt, second.ReadAt)

	// the sender cannot mark the message read
	status, _ = c.do(http.MethodPost, "/messages/"+message.ID+"/read", aliceToken, nil)
	req.Equal(http.StatusForbidden, status)

	// both parties can view the message detail with joined profiles
	status, body = c.do(http.MethodGet, "/messages/"+message.ID, aliceToken, nil)
	req.Equal(http.StatusOK, status)

	var detail struct {
		FromUser struct {
			Username string `json:"username"`
		} `json:"from_user"`
		ToUser struct {
			Username string `json:"username"`
		} `json:"to_user"`
		ReadAt *time.Time `json:"read_at"`
	}
	req.NoError(json.Unmarshal(body["message"], &detail))
	req.Equal("alice", detail.FromUser.Username)
	req.Equal("bob", detail.ToUser.Username)
	req.NotNil(detail.ReadAt)

	// a third party is denied
	carolToken := c.register("carol", "pw3")
	status, _ = c.do(http.MethodGet, "/messages/"+message.ID, carolToken, nil)
	req.Equal(http.StatusForbidden, status)

	// inbox and outbox views
	status, body = c.do(http.MethodGet, "/users/bob/to", bobToken, nil)
	req.Equal(http.StatusOK, status)
	var inbox []json.RawMessage
	req.NoError(json.Unmarshal(body["messages"], &inbox))
	req.Len(inbox, 1)

	status, _ = c.do(http.MethodGet, "/users/bob/to", aliceToken, nil)
	req.Equal(http.StatusForbidden, status)
}

func TestAuthenticationBoundary(t *testing.T) {
	req := require.New(t)
	server := startServer(t)
	c := newClient(t, server)

	c.register("alice", "pw1")

	// wrong password and unknown username both read as plain 401s
	status, _ := c.do(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	req.Equal(http.StatusUnauthorized, status)

	status, _ = c.do(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "ghost", "password": "whatever",
	})
	req.Equal(http.StatusUnauthorized, status)

	// duplicate registration conflicts
	status, _ = c.do(http.MethodPost, "/auth/register", "", map[string]string{
		"username": "alice", "password": "pw9",
	})
	req.Equal(http.StatusConflict, status)

	// every protected operation rejects a missing or bogus token
	for _, path := range []string{"/users", "/users/alice", "/messages/any-id"} {
		status, _ = c.do(http.MethodGet, path, "", nil)
		req.Equal(http.StatusUnauthorized, status, path)

		status, _ = c.do(http.MethodGet, path, "bogus-token", nil)
		req.Equal(http.StatusUnauthorized, status, path)
	}

	// a real login yields a usable token and bumps last_login_at
	status, body := c.do(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "alice", "password": "pw1",
	})
	req.Equal(http.StatusOK, status)

	var token string
	req.NoError(json.Unmarshal(body["token"], &token))

	status, body = c.do(http.MethodGet, "/users/alice", token, nil)
	req.Equal(http.StatusOK, status)

	var account struct {
		JoinedAt    time.Time `json:"joined_at"`
		LastLoginAt time.Time `json:"last_login_at"`
	}
	req.NoError(json.Unmarshal(body["user"], &account))
	req.True(account.LastLoginAt.After(account.JoinedAt))
}
