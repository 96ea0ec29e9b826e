package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tablebite/internal/auth"
	"tablebite/internal/domain"
	"tablebite/internal/storage"
)

type UserService struct {
	users  UserRepository
	store  RefreshTokenStore
	tokens *auth.TokenManager
}

func NewUserService(users UserRepository, store RefreshTokenStore, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, store: store, tokens: tokens}
}

func (s *UserService) Register(name, email, password, phone, role string) (*domain.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" ||
		strings.TrimSpace(password) == "" || strings.TrimSpace(phone) == "" {
		return nil, ErrMissingFields
	}

	if role != domain.RoleAdmin {
		role = domain.RoleCustomer
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        phone,
		Role:         role,
	}
	if err := s.users.CreateUser(user); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	if email == "" || password == "" {
		return nil, nil, ErrMissingFields
	}

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*domain.User, *TokenPair, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, nil, ErrInvalidRefresh
	}

	stored, err := s.store.GetRefreshToken(ctx, claims.UserID)
	if err != nil {
		return nil, nil, err
	}
	if stored == "" || stored != refreshToken {
		return nil, nil, ErrInvalidRefresh
	}

	user, err := s.users.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// issueTokens rotates the stored refresh token alongside every issue.
func (s *UserService) issueTokens(ctx context.Context, user *domain.User) (*TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	if err := s.store.SaveRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *UserService) Logout(ctx context.Context, userID int) error {
	return s.store.DeleteRefreshToken(ctx, userID)
}

func (s *UserService) GetByID(userID int) (*domain.User, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdatePassword(userID int, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return ErrMissingFields
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, oldPassword) {
		return ErrWrongPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(userID, hash)
}

func (s *UserService) UpdateAccount(userID int, name, phone string) (*domain.User, error) {
	if name == "" && phone == "" {
		return nil, ErrMissingFields
	}
	user, err := s.users.UpdateAccount(userID, name, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) PromoteToAdmin(userID int) (*domain.User, error) {
	user, err := s.users.UpdateRole(userID, domain.RoleAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) AddAddress(addr *domain.Address) error {
	if addr.Street == "" || addr.City == "" {
		return ErrMissingFields
	}
	return s.users.CreateAddress(addr)
}

func (s *UserService) ListAddresses(userID int) ([]domain.Address, error) {
	return s.users.ListAddresses(userID)
}

var _ UserServiceInterface = (*UserService)(nil)
