package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"tablebite/internal/domain"
)

type ReservationServiceInterface struct {
	mock.Mock
}

func NewReservationServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReservationServiceInterface {
	m := &ReservationServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReservationServiceInterface) Slots(date time.Time) []time.Time {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]time.Time)
}

func (m *ReservationServiceInterface) Book(userID, tableID int, date, slot string) (*domain.Reservation, error) {
	args := m.Called(userID, tableID, date, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *ReservationServiceInterface) Update(reservationID, tableID int, date, slot, status string) (*domain.Reservation, error) {
	args := m.Called(reservationID, tableID, date, slot, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *ReservationServiceInterface) Cancel(reservationID int) error {
	args := m.Called(reservationID)
	return args.Error(0)
}

func (m *ReservationServiceInterface) Get(reservationID int) (*domain.Reservation, error) {
	args := m.Called(reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *ReservationServiceInterface) ListForUser(userID int) ([]domain.Reservation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *ReservationServiceInterface) ListForDay(date string) ([]domain.Reservation, error) {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *ReservationServiceInterface) ListAll() ([]domain.Reservation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *ReservationServiceInterface) AvailableSlots(tableID int, date string) ([]string, error) {
	args := m.Called(tableID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *ReservationServiceInterface) CreateTable(number, capacity int) (*domain.Table, error) {
	args := m.Called(number, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *ReservationServiceInterface) UpdateTable(id, number, capacity int, isActive *bool) (*domain.Table, error) {
	args := m.Called(id, number, capacity, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *ReservationServiceInterface) DeleteTable(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *ReservationServiceInterface) GetTable(id int) (*domain.Table, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *ReservationServiceInterface) ListTables() ([]domain.Table, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Table), args.Error(1)
}
