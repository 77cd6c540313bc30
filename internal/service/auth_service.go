package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"churchapi/internal/models"
	"churchapi/internal/repository"
	"churchapi/internal/security"
	"churchapi/internal/validation"
)

// WelcomeMailer sends the registration greeting
type WelcomeMailer interface {
	SendWelcomeEmail(ctx context.Context, toEmail, toName string) error
}

// RegisterInput is the body of a registration request
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the body of a login request
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccessToken is returned by a successful login
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// WelcomeMailTimeout bounds how long a registration waits on the welcome mail
const WelcomeMailTimeout = 5 * time.Second

// AuthService handles registration, login and token verification
type AuthService struct {
	userRepo    *repository.UserRepository
	hasher      security.PasswordHasher
	tokens      *security.TokenService
	mailer      WelcomeMailer
	mailTimeout time.Duration
}

// NewAuthService creates a new auth service. mailer may be nil.
func NewAuthService(userRepo *repository.UserRepository, hasher security.PasswordHasher, tokens *security.TokenService, mailer WelcomeMailer) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		hasher:      hasher,
		tokens:      tokens,
		mailer:      mailer,
		mailTimeout: WelcomeMailTimeout,
	}
}

// Register creates a new member account
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	// Fast path; the unique index still decides concurrent registrations
	existingUser, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       newID(),
		Name:     name,
		Email:    email,
		Password: passwordHash,
		Role:     models.RoleMember,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if s.mailer != nil {
		// the account exists by now, so a client disconnect must not abort the mail
		mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.mailTimeout)
		defer cancel()
		if err := s.mailer.SendWelcomeEmail(mailCtx, user.Email, user.Name); err != nil {
			slog.WarnContext(ctx, "welcome email failed", "user_id", user.ID, "error", err)
		}
	}

	return user, nil
}

// Login checks credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AccessToken, error) {
	email := strings.TrimSpace(in.Email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !s.hasher.Verify(in.Password, user.Password) || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AccessToken{AccessToken: token, TokenType: "bearer"}, nil
}

// Authenticate verifies a bearer token and returns the actor it proves.
// Tokens of deleted or deactivated accounts are refused.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.Actor, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return models.Actor{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return models.Actor{}, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return models.Actor{}, fmt.Errorf("%w: account unavailable", ErrUnauthenticated)
	}

	return models.Actor{UserID: claims.Subject, Role: claims.Role}, nil
}
