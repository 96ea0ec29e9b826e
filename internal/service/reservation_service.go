package service

import (
	"database/sql"
	"errors"
	"time"

	"tablebite/internal/domain"
	"tablebite/internal/storage"
)

const dateLayout = "2006-01-02"
const slotLayout = "15:04"

// SlotPolicy defines the discrete reservation grid: slots start at OpenHour
// and repeat every Step until CloseHour the same day.
type SlotPolicy struct {
	OpenHour  int
	CloseHour int
	Step      time.Duration
}

type ReservationService struct {
	repo   ReservationRepository
	policy SlotPolicy
	now    func() time.Time
}

func NewReservationService(repo ReservationRepository, policy SlotPolicy) *ReservationService {
	return &ReservationService{repo: repo, policy: policy, now: time.Now}
}

// Slots returns every bookable instant on the given date, in local time.
func (s *ReservationService) Slots(date time.Time) []time.Time {
	open := time.Date(date.Year(), date.Month(), date.Day(), s.policy.OpenHour, 0, 0, 0, date.Location())
	close := time.Date(date.Year(), date.Month(), date.Day(), s.policy.CloseHour, 0, 0, 0, date.Location())

	var slots []time.Time
	for t := open; t.Before(close); t = t.Add(s.policy.Step) {
		slots = append(slots, t)
	}
	return slots
}

// Book reserves one table for one slot. Conflicts surface as ErrSlotTaken
// through the storage layer's uniqueness guarantee, so two concurrent
// bookings for the same slot cannot both succeed.
func (s *ReservationService) Book(userID, tableID int, date, slot string) (*domain.Reservation, error) {
	reservedAt, err := s.parseSlot(date, slot)
	if err != nil {
		return nil, err
	}
	if !reservedAt.After(s.now()) {
		return nil, ErrPastDate
	}

	table, err := s.repo.GetTable(tableID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	if !table.IsActive {
		return nil, ErrTableInactive
	}

	res := &domain.Reservation{
		UserID:     userID,
		TableID:    tableID,
		ReservedAt: reservedAt,
		Status:     domain.ReservationPending,
	}
	if err := s.repo.CreateReservation(res); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) Update(reservationID, tableID int, date, slot, status string) (*domain.Reservation, error) {
	current, err := s.Get(reservationID)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.ReservationCancelled {
		return nil, ErrAlreadyCancelled
	}

	reservedAt := current.ReservedAt
	if date != "" || slot != "" {
		if date == "" || slot == "" {
			return nil, ErrMissingFields
		}
		reservedAt, err = s.parseSlot(date, slot)
		if err != nil {
			return nil, err
		}
	}
	// Applies to the kept slot too: an elapsed reservation cannot be moved to
	// another table or status.
	if !reservedAt.After(s.now()) {
		return nil, ErrPastDate
	}

	if tableID == 0 {
		tableID = current.TableID
	}
	if tableID != current.TableID {
		table, err := s.repo.GetTable(tableID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrTableNotFound
			}
			return nil, err
		}
		if !table.IsActive {
			return nil, ErrTableInactive
		}
	}

	if status == "" {
		status = current.Status
	}
	if !domain.ValidReservationStatus(status) {
		return nil, ErrInvalidResStatus
	}

	res, err := s.repo.UpdateReservation(reservationID, tableID, reservedAt, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		if storage.IsUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return res, nil
}

// Cancel reports a second cancellation attempt instead of silently
// succeeding.
func (s *ReservationService) Cancel(reservationID int) error {
	rows, err := s.repo.CancelReservation(reservationID)
	if err != nil {
		return err
	}
	if rows == 0 {
		if _, err := s.Get(reservationID); err != nil {
			return err
		}
		return ErrAlreadyCancelled
	}
	return nil
}

func (s *ReservationService) Get(reservationID int) (*domain.Reservation, error) {
	res, err := s.repo.GetReservation(reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) ListForUser(userID int) ([]domain.Reservation, error) {
	return s.repo.ListByUser(userID)
}

func (s *ReservationService) ListForDay(date string) ([]domain.Reservation, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, ErrInvalidSlot
	}
	return s.repo.ListByRange(day, day.AddDate(0, 0, 1))
}

func (s *ReservationService) ListAll() ([]domain.Reservation, error) {
	return s.repo.ListAll()
}

// AvailableSlots is the policy grid minus the table's live bookings for the
// day, formatted as HH:MM strings.
func (s *ReservationService) AvailableSlots(tableID int, date string) ([]string, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, ErrInvalidSlot
	}

	table, err := s.repo.GetTable(tableID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	if !table.IsActive {
		return nil, ErrTableInactive
	}

	reserved, err := s.repo.ReservedSlots(tableID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	taken := make(map[int64]bool, len(reserved))
	for _, t := range reserved {
		taken[t.Unix()] = true
	}

	available := []string{}
	for _, slot := range s.Slots(day) {
		if !taken[slot.Unix()] {
			available = append(available, slot.Format(slotLayout))
		}
	}
	return available, nil
}

func (s *ReservationService) CreateTable(number, capacity int) (*domain.Table, error) {
	if number <= 0 || capacity <= 0 {
		return nil, ErrMissingFields
	}
	table := &domain.Table{Number: number, Capacity: capacity, IsActive: true}
	if err := s.repo.CreateTable(table); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrTableNumberTaken
		}
		return nil, err
	}
	return table, nil
}

func (s *ReservationService) UpdateTable(id, number, capacity int, isActive *bool) (*domain.Table, error) {
	table, err := s.repo.UpdateTable(id, number, capacity, isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		if storage.IsUniqueViolation(err) {
			return nil, ErrTableNumberTaken
		}
		return nil, err
	}
	return table, nil
}

func (s *ReservationService) DeleteTable(id int) error {
	rows, err := s.repo.DeleteTable(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTableNotFound
	}
	return nil
}

func (s *ReservationService) GetTable(id int) (*domain.Table, error) {
	table, err := s.repo.GetTable(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return table, nil
}

func (s *ReservationService) ListTables() ([]domain.Table, error) {
	return s.repo.ListTables()
}

// parseSlot combines a date and an HH:MM slot into a local-time instant and
// rejects anything off the policy grid.
func (s *ReservationService) parseSlot(date, slot string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidSlot
	}
	at, err := time.ParseInLocation(dateLayout+" "+slotLayout, date+" "+slot, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidSlot
	}

	for _, candidate := range s.Slots(day) {
		if candidate.Equal(at) {
			return at, nil
		}
	}
	return time.Time{}, ErrInvalidSlot
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
