package userapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"

	userEntity "mart/internal/core/user"
	userPort "mart/internal/ports/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username or email already taken")
	ErrInvalidUsername    = errors.New("username must be 1-64 word characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrNotFound           = errors.New("user not found")
)

const tokenTTL = 24 * time.Hour

// UserService handles registration, authentication and profile management.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// RegisterUser creates a new account with a bcrypt-hashed password.
func (s *UserService) RegisterUser(ctx context.Context, username, email, password string) (*userPort.UserDTO, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if !validUsername(username) {
		return nil, ErrInvalidUsername
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if password == "" {
		return nil, ErrInvalidCredentials
	}

	existing, err := s.UserRepository.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return toUserDTO(created), nil
}

// LoginUser verifies credentials and issues a signed JWT.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenTTL)
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		Issuer:    "mart",
		ExpiresAt: expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// Profile returns the public view of a user looked up by handle.
func (s *UserService) Profile(ctx context.Context, username string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return toUserDTO(u), nil
}

// EditProfile changes the handle and the about-me text. A changed handle
// keeps the uniqueness rule.
func (s *UserService) EditProfile(ctx context.Context, userID, username, aboutMe string) (*userPort.UserDTO, error) {
	username = strings.TrimSpace(username)
	if !validUsername(username) {
		return nil, ErrInvalidUsername
	}

	current, err := s.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if current == nil {
		return nil, ErrNotFound
	}

	if username != current.Username {
		taken, err := s.UserRepository.FindByUsername(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("checking username: %w", err)
		}
		if taken != nil {
			return nil, ErrUsernameTaken
		}
	}

	if err := s.UserRepository.UpdateProfile(ctx, userID, username, aboutMe); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	current.Username = username
	current.AboutMe = aboutMe
	return toUserDTO(current), nil
}

func toUserDTO(u *userEntity.User) *userPort.UserDTO {
	dto := &userPort.UserDTO{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		AboutMe:  u.AboutMe,
	}
	if u.LastSeenAt != nil {
		dto.LastSeenAt = u.LastSeenAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func validUsername(username string) bool {
	if len(username) == 0 || len(username) > 64 {
		return false
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '.' || r == '-':
		default:
			return false
		}
	}
	return true
}
