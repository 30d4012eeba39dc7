package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	hasher := NewHasher(DefaultHashParams())
	password := "correct horse battery staple"

	hash, err := hasher.Hash(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))
	req.NotContains(hash, password)

	match, err := hasher.Compare(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = hasher.Compare("wrong password", hash)
	req.NoError(err)
	req.False(match)
}

func TestHashIsSalted(t *testing.T) {
	req := require.New(t)
	hasher := NewHasher(DefaultHashParams())

	first, err := hasher.Hash("same password")
	req.NoError(err)
	second, err := hasher.Hash("same password")
	req.NoError(err)

	// Distinct salts mean the same password never produces the same digest.
	req.NotEqual(first, second)
}

func TestCompareSurvivesParameterChange(t *testing.T) {
	req := require.New(t)

	small := DefaultHashParams()
	small.Memory = 16 * 1024
	hash, err := NewHasher(small).Hash("pw")
	req.NoError(err)

	// A hasher configured with different parameters still verifies digests
	// produced under the old ones.
	match, err := NewHasher(DefaultHashParams()).Compare("pw", hash)
	req.NoError(err)
	req.True(match)
}

func TestValidateRegister(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr bool
	}{
		{"valid request", RegisterRequest{Username: "alice", Password: "pw1", FirstName: "Alice", LastName: "A", Phone: "+15551234"}, false},
		{"missing username", RegisterRequest{Password: "pw1"}, true},
		{"missing password", RegisterRequest{Username: "alice"}, true},
		{"username too long", RegisterRequest{Username: strings.Repeat("a", 65), Password: "pw1"}, true},
		{"username with key delimiter", RegisterRequest{Username: "alice:x", Password: "pw1"}, true},
		{"username with spaces", RegisterRequest{Username: "alice smith", Password: "pw1"}, true},
		{"digits are fine", RegisterRequest{Username: "alice2", Password: "pw1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.request)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestValidateSendMessage(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidateSendMessage(SendMessageRequest{ToUsername: "bob", Body: "hi"}))
	req.Error(ValidateSendMessage(SendMessageRequest{ToUsername: "bob"}))
	req.Error(ValidateSendMessage(SendMessageRequest{Body: "hi"}))
}
