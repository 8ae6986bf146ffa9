package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warehouse/internal/dto"
	"warehouse/internal/model"
	"warehouse/internal/repository"
	"warehouse/internal/token"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordCost = 12

// AuthService issues, refreshes and verifies bearer tokens.
type AuthService interface {
	Obtain(ctx context.Context, req dto.TokenObtainRequest) (*dto.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenAccessResponse, error)
	Verify(ctx context.Context, raw string) error
	// CreateUser creates an active user or resets the password of an existing one.
	CreateUser(ctx context.Context, username, password string) (*model.User, error)
}

type authService struct {
	users   repository.UserRepository
	refresh repository.RefreshTokenRepository
	tokens  *token.Manager
}

func NewAuthService(users repository.UserRepository, refresh repository.RefreshTokenRepository, tokens *token.Manager) AuthService {
	return &authService{users: users, refresh: refresh, tokens: tokens}
}

func (s *authService) Obtain(ctx context.Context, req dto.TokenObtainRequest) (*dto.TokenPairResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	access, _, err := s.tokens.Issue(token.Access, user.ID)
	if err != nil {
		return nil, err
	}
	refresh, claims, err := s.tokens.Issue(token.Refresh, user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.refresh.Save(ctx, claims.ID, user.ID, s.tokens.Lifetime(token.Refresh)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	if err := s.users.TouchLastLogin(ctx, user.ID, time.Now()); err != nil {
		log.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to record last login")
	}

	return &dto.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenAccessResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, token.Refresh)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	if err := s.checkRegistered(ctx, claims); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrTokenInvalid
	}

	access, _, err := s.tokens.Issue(token.Access, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenAccessResponse{Access: access}, nil
}

// Verify accepts both token types; refresh tokens must still be registered.
func (s *authService) Verify(ctx context.Context, raw string) error {
	claims, err := s.tokens.Parse(raw, "")
	if err != nil {
		return ErrTokenInvalid
	}
	if claims.TokenType == token.Refresh {
		return s.checkRegistered(ctx, claims)
	}
	return nil
}

func (s *authService) checkRegistered(ctx context.Context, claims *token.Claims) error {
	ok, err := s.refresh.Exists(ctx, claims.ID)
	if err != nil {
		return fmt.Errorf("lookup refresh token: %w", err)
	}
	if !ok {
		return ErrTokenInvalid
	}
	return nil
}

func (s *authService) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	verr := &ValidationError{}
	switch {
	case username == "":
		verr.Add("username", "This field may not be blank.")
	case len(username) > 150:
		verr.Add("username", "Ensure this field has no more than 150 characters.")
	}
	if password == "" {
		verr.Add("password", "This field may not be blank.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}
