package tests

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tablebite/internal/auth"
	"tablebite/internal/domain"
	"tablebite/internal/mocks"
	"tablebite/internal/service"
)

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-access", "test-refresh", 15*time.Minute, 7*24*time.Hour)
}

func TestUserService_Register(t *testing.T) {
	users := mocks.NewUserRepository(t)
	store := mocks.NewRefreshTokenStore(t)
	svc := service.NewUserService(users, store, newTokenManager())

	tests := []struct {
		name          string
		input         [5]string // name, email, password, phone, role
		prepareMocks  func()
		expectedError error
		expectedRole  string
	}{
		{
			name:  "success_defaults_to_customer",
			input: [5]string{"Alice", "alice@example.com", "secret", "555-0001", ""},
			prepareMocks: func() {
				users.On("CreateUser", mock.Anything).Return(nil).Once()
			},
			expectedRole: domain.RoleCustomer,
		},
		{
			name:  "success_keeps_admin_role",
			input: [5]string{"Bob", "bob@example.com", "secret", "555-0002", domain.RoleAdmin},
			prepareMocks: func() {
				users.On("CreateUser", mock.Anything).Return(nil).Once()
			},
			expectedRole: domain.RoleAdmin,
		},
		{
			name:          "error_missing_fields",
			input:         [5]string{"", "carol@example.com", "secret", "555-0003", ""},
			prepareMocks:  func() {},
			expectedError: service.ErrMissingFields,
		},
		{
			name:  "error_duplicate_email",
			input: [5]string{"Dave", "alice@example.com", "secret", "555-0004", ""},
			prepareMocks: func() {
				users.On("CreateUser", mock.Anything).
					Return(&pq.Error{Code: "23505"}).Once()
			},
			expectedError: service.ErrEmailTaken,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			user, err := svc.Register(
				testCase.input[0], testCase.input[1], testCase.input[2],
				testCase.input[3], testCase.input[4])
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expectedRole, user.Role)
			assert.NotEqual(t, testCase.input[2], user.PasswordHash)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	users := mocks.NewUserRepository(t)
	store := mocks.NewRefreshTokenStore(t)
	svc := service.NewUserService(users, store, newTokenManager())
	ctx := context.Background()

	hash, err := auth.HashPassword("secret")
	assert.NoError(t, err)
	stored := &domain.User{ID: 7, Email: "alice@example.com", PasswordHash: hash, Role: domain.RoleCustomer}

	t.Run("success_issues_token_pair", func(t *testing.T) {
		users.On("GetUserByEmail", "alice@example.com").Return(stored, nil).Once()
		store.On("SaveRefreshToken", ctx, 7, mock.Anything).Return(nil).Once()

		user, pair, err := svc.Login(ctx, "alice@example.com", "secret")
		assert.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("error_wrong_password", func(t *testing.T) {
		users.On("GetUserByEmail", "alice@example.com").Return(stored, nil).Once()

		_, _, err := svc.Login(ctx, "alice@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestUserService_Refresh(t *testing.T) {
	users := mocks.NewUserRepository(t)
	store := mocks.NewRefreshTokenStore(t)
	manager := newTokenManager()
	svc := service.NewUserService(users, store, manager)
	ctx := context.Background()

	user := &domain.User{ID: 7, Email: "alice@example.com", Role: domain.RoleCustomer}
	token, err := manager.GenerateRefreshToken(7)
	assert.NoError(t, err)

	t.Run("success_rotates_tokens", func(t *testing.T) {
		store.On("GetRefreshToken", ctx, 7).Return(token, nil).Once()
		users.On("GetUserByID", 7).Return(user, nil).Once()
		store.On("SaveRefreshToken", ctx, 7, mock.Anything).Return(nil).Once()

		_, pair, err := svc.Refresh(ctx, token)
		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
	})

	t.Run("error_token_not_in_store", func(t *testing.T) {
		store.On("GetRefreshToken", ctx, 7).Return("some-other-token", nil).Once()

		_, _, err := svc.Refresh(ctx, token)
		assert.ErrorIs(t, err, service.ErrInvalidRefresh)
	})

	t.Run("error_garbage_token", func(t *testing.T) {
		_, _, err := svc.Refresh(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, service.ErrInvalidRefresh)
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	users := mocks.NewUserRepository(t)
	store := mocks.NewRefreshTokenStore(t)
	svc := service.NewUserService(users, store, newTokenManager())

	hash, err := auth.HashPassword("old-secret")
	assert.NoError(t, err)
	user := &domain.User{ID: 7, PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		users.On("GetUserByID", 7).Return(user, nil).Once()
		users.On("UpdatePassword", 7, mock.Anything).Return(nil).Once()

		assert.NoError(t, svc.UpdatePassword(7, "old-secret", "new-secret"))
	})

	t.Run("error_wrong_old_password", func(t *testing.T) {
		users.On("GetUserByID", 7).Return(user, nil).Once()

		err := svc.UpdatePassword(7, "bad-guess", "new-secret")
		assert.ErrorIs(t, err, service.ErrWrongPassword)
	})
}
