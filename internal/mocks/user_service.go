package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tablebite/internal/domain"
	"tablebite/internal/service"
)

type UserServiceInterface struct {
	mock.Mock
}

func NewUserServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserServiceInterface {
	m := &UserServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserServiceInterface) Register(name, email, password, phone, role string) (*domain.User, error) {
	args := m.Called(name, email, password, phone, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserServiceInterface) Login(ctx context.Context, email, password string) (*domain.User, *service.TokenPair, error) {
	args := m.Called(ctx, email, password)
	var user *domain.User
	var pair *service.TokenPair
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	if args.Get(1) != nil {
		pair = args.Get(1).(*service.TokenPair)
	}
	return user, pair, args.Error(2)
}

func (m *UserServiceInterface) Refresh(ctx context.Context, refreshToken string) (*domain.User, *service.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	var user *domain.User
	var pair *service.TokenPair
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	if args.Get(1) != nil {
		pair = args.Get(1).(*service.TokenPair)
	}
	return user, pair, args.Error(2)
}

func (m *UserServiceInterface) Logout(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *UserServiceInterface) GetByID(userID int) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserServiceInterface) UpdatePassword(userID int, oldPassword, newPassword string) error {
	args := m.Called(userID, oldPassword, newPassword)
	return args.Error(0)
}

func (m *UserServiceInterface) UpdateAccount(userID int, name, phone string) (*domain.User, error) {
	args := m.Called(userID, name, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserServiceInterface) PromoteToAdmin(userID int) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserServiceInterface) AddAddress(addr *domain.Address) error {
	args := m.Called(addr)
	return args.Error(0)
}

func (m *UserServiceInterface) ListAddresses(userID int) ([]domain.Address, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Address), args.Error(1)
}
