package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"tablebite/internal/domain"
)

type ReservationRepository struct {
	mock.Mock
}

func NewReservationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReservationRepository {
	m := &ReservationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReservationRepository) CreateTable(table *domain.Table) error {
	args := m.Called(table)
	return args.Error(0)
}

func (m *ReservationRepository) GetTable(id int) (*domain.Table, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *ReservationRepository) ListTables() ([]domain.Table, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Table), args.Error(1)
}

func (m *ReservationRepository) UpdateTable(id, number, capacity int, isActive *bool) (*domain.Table, error) {
	args := m.Called(id, number, capacity, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *ReservationRepository) DeleteTable(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReservationRepository) CreateReservation(res *domain.Reservation) error {
	args := m.Called(res)
	return args.Error(0)
}

func (m *ReservationRepository) GetReservation(id int) (*domain.Reservation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *ReservationRepository) UpdateReservation(id, tableID int, reservedAt time.Time, status string) (*domain.Reservation, error) {
	args := m.Called(id, tableID, reservedAt, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *ReservationRepository) CancelReservation(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReservationRepository) ListByUser(userID int) ([]domain.Reservation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *ReservationRepository) ListByRange(from, to time.Time) ([]domain.Reservation, error) {
	args := m.Called(from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *ReservationRepository) ListAll() ([]domain.Reservation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *ReservationRepository) ReservedSlots(tableID int, from, to time.Time) ([]time.Time, error) {
	args := m.Called(tableID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}
