//go:generate go run go.uber.org/mock/mockgen -source=identity_service.go -destination=../mocks/mock_identity_service.go -package=mocks
package services

import (
	"fmt"
	"time"

	"messagely/auth"
	"messagely/errors"
	"messagely/repositories"

	"github.com/samber/lo"
)

type IIdentityService interface {
	Register(req auth.RegisterRequest) (Profile, error)
	Authenticate(username, password string) (bool, error)
	UpdateLastLogin(username string) (LoginStamp, error)
	GetProfile(username string) (Account, error)
	ListProfiles() ([]Profile, error)
}

// Profile is the public summary of an account.
type Profile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Account is the full account view. It deliberately has no password field.
type Account struct {
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	JoinedAt    time.Time `json:"joined_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

type LoginStamp struct {
	Username    string    `json:"username"`
	LastLoginAt time.Time `json:"last_login_at"`
}

type IdentityService struct {
	userRepository repositories.IUserRepository
	hasher         auth.Hasher
	dummyHash      string
}

func NewIdentityService(repo repositories.IUserRepository, hasher auth.Hasher) (*IdentityService, error) {
	// Hashed once at startup and compared against whenever a login names an
	// unknown user, so both failure paths cost the same.
	dummyHash, err := hasher.Hash("decoy-password-for-unknown-users")
	if err != nil {
		return nil, fmt.Errorf("hashing failed: %w", err)
	}
	return &IdentityService{
		userRepository: repo,
		hasher:         hasher,
		dummyHash:      dummyHash,
	}, nil
}

// Register creates an account with a salted hash of the password. Both
// timestamps are set to the registration instant. The plain password never
// reaches the repository.
func (s *IdentityService) Register(req auth.RegisterRequest) (Profile, error) {
	if err := auth.ValidateRegister(req); err != nil {
		return Profile{}, err
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return Profile{}, fmt.Errorf("hashing failed: %w", err)
	}

	now := time.Now().UTC()
	user := repositories.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		JoinedAt:     now,
		LastLoginAt:  now,
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return Profile{}, err // Propagates ErrUserAlreadyExists on a taken username
	}

	return toProfile(user), nil
}

// Authenticate reports whether the credentials are valid. An unknown username
// and a wrong password are indistinguishable to the caller: both return
// (false, nil), and the unknown-user path still performs a hash comparison.
func (s *IdentityService) Authenticate(username, password string) (bool, error) {
	user, err := s.userRepository.GetUser(username)
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			_, _ = s.hasher.Compare(password, s.dummyHash)
			return false, nil
		}
		return false, err
	}

	match, err := s.hasher.Compare(password, user.PasswordHash)
	if err != nil {
		return false, err
	}
	return match, nil
}

func (s *IdentityService) UpdateLastLogin(username string) (LoginStamp, error) {
	user, err := s.userRepository.UpdateLastLogin(username, time.Now().UTC())
	if err != nil {
		return LoginStamp{}, err
	}
	return LoginStamp{Username: user.Username, LastLoginAt: user.LastLoginAt}, nil
}

func (s *IdentityService) GetProfile(username string) (Account, error) {
	user, err := s.userRepository.GetUser(username)
	if err != nil {
		return Account{}, err
	}
	return Account{
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Phone:       user.Phone,
		JoinedAt:    user.JoinedAt,
		LastLoginAt: user.LastLoginAt,
	}, nil
}

func (s *IdentityService) ListProfiles() ([]Profile, error) {
	users, err := s.userRepository.ListUsers()
	if err != nil {
		return nil, err
	}
	return lo.Map(users, func(user repositories.User, _ int) Profile {
		return toProfile(user)
	}), nil
}

func toProfile(user repositories.User) Profile {
	return Profile{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
	}
}
