package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"store2070/internal/models"
	"store2070/internal/repositories"
	"store2070/pkg/rabbitmq"
)

// Mock tokens returned in place of real credentials. The demo issues
// the same fixed string per operation instead of signing anything.
const (
	mockLoginToken    = "fake-jwt-token-2070"
	mockRegisterToken = "fake-jwt-token-new-user"
	mockVerifiedToken = "fake-jwt-token-verified"
)

// AuthPayload is the uniform result of every auth mutation. Message is
// always set; on failure the remaining optional fields stay at their
// zero values.
type AuthPayload struct {
	Success       bool   `json:"success"`
	Token         string `json:"token"`
	UserID        int    `json:"userId"`
	Username      string `json:"username"`
	IsAdmin       int    `json:"isAdmin"`
	EmailVerified bool   `json:"emailVerified"`
	Message       string `json:"message"`
}

// Mailer is the notification sink the auth flow drives.
type Mailer interface {
	SendVerificationEmail(to, token string) error
	SendWelcomeEmail(to string) error
}

// AuthService handles login, registration and email verification.
//
// Business failures (unknown user, wrong password, duplicate username,
// invalid token) come back as payloads with Success=false; only
// infrastructure failures return an error.
type AuthService struct {
	userRepo repositories.UserRepository
	mailer   Mailer
	events   *rabbitmq.Client // optional, nil when messaging is disabled
	validate *validator.Validate
}

// NewAuthService creates a new AuthService. events may be nil.
func NewAuthService(userRepo repositories.UserRepository, mailer Mailer, events *rabbitmq.Client) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mailer:   mailer,
		events:   events,
		validate: validator.New(),
	}
}

// registerInput carries the register mutation arguments through
// validation.
type registerInput struct {
	Username string `validate:"required,max=100"`
	Password string `validate:"required"`
}

// Login checks the supplied credentials against the stored user.
// Passwords are compared verbatim; this demo stores them un-hashed.
func (s *AuthService) Login(username, password string) (*AuthPayload, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &AuthPayload{Success: false, Message: "User not found"}, nil
		}
		return nil, err
	}

	if user.Password != password {
		return &AuthPayload{Success: false, Message: "Invalid credentials"}, nil
	}

	return &AuthPayload{
		Success:       true,
		Message:       "Login successful",
		Token:         mockLoginToken,
		UserID:        int(user.ID),
		Username:      user.Username,
		IsAdmin:       user.IsAdmin,
		EmailVerified: user.EmailVerified,
	}, nil
}

// Register creates a new unverified user and triggers the verification
// email. Uniqueness is enforced by the database's unique index; a
// conflicting insert surfaces as gorm.ErrDuplicatedKey instead of a
// racy check-then-insert.
func (s *AuthService) Register(username, password string) (*AuthPayload, error) {
	input := registerInput{Username: username, Password: password}
	if err := s.validate.Struct(input); err != nil {
		return &AuthPayload{Success: false, Message: fmt.Sprintf("Validation failed: %v", err)}, nil
	}

	token, err := generateVerificationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	user := &models.User{
		Username:          username,
		Password:          password,
		IsAdmin:           0,
		EmailVerified:     false,
		VerificationToken: token,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &AuthPayload{Success: false, Message: "Identity already exists in grid"}, nil
		}
		return nil, err
	}

	if err := s.mailer.SendVerificationEmail(user.Username, token); err != nil {
		log.Printf("Warning: failed to send verification email to %s: %v", user.Username, err)
	}
	s.publishEvent("user.registered", map[string]interface{}{
		"userId":   user.ID,
		"username": user.Username,
	})

	return &AuthPayload{
		Success:       true,
		Message:       "Identity forged. Check your neural inbox for verification.",
		Token:         mockRegisterToken,
		UserID:        int(user.ID),
		Username:      user.Username,
		IsAdmin:       0,
		EmailVerified: false,
	}, nil
}

// VerifyEmail consumes a one-time verification token: the matching
// user is flipped to verified and the token is cleared so a second
// call with the same token fails.
func (s *AuthService) VerifyEmail(token string) (*AuthPayload, error) {
	// Verified users hold an empty token string; an empty input must
	// never match one of them.
	if token == "" {
		return &AuthPayload{Success: false, Message: "Invalid verification token"}, nil
	}

	user, err := s.userRepo.GetByVerificationToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &AuthPayload{Success: false, Message: "Invalid verification token"}, nil
		}
		return nil, err
	}

	if err := s.userRepo.MarkVerified(user.ID); err != nil {
		return nil, err
	}

	if err := s.mailer.SendWelcomeEmail(user.Username); err != nil {
		log.Printf("Warning: failed to send welcome email to %s: %v", user.Username, err)
	}
	s.publishEvent("user.verified", map[string]interface{}{
		"userId":   user.ID,
		"username": user.Username,
	})

	return &AuthPayload{
		Success:       true,
		Message:       "Email verified successfully. Access granted.",
		Token:         mockVerifiedToken,
		UserID:        int(user.ID),
		Username:      user.Username,
		IsAdmin:       user.IsAdmin,
		EmailVerified: true,
	}, nil
}

// publishEvent publishes an auth event when messaging is configured.
// Publish failures are logged, never surfaced to the caller.
func (s *AuthService) publishEvent(event string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishAuthEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}

// generateVerificationToken returns a 32-byte cryptographically random
// URL-safe token (43 characters, unpadded base64).
func generateVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
