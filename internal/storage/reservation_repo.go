package storage

import (
	"database/sql"
	"time"

	"tablebite/internal/domain"
)

type ReservationRepo struct {
	DB *sql.DB
}

func NewReservationRepo(db *sql.DB) *ReservationRepo {
	return &ReservationRepo{DB: db}
}

func (r *ReservationRepo) CreateTable(table *domain.Table) error {
	return r.DB.QueryRow(
		"INSERT INTO tables (number, capacity) VALUES ($1, $2) RETURNING id, is_active, created_at",
		table.Number, table.Capacity,
	).Scan(&table.ID, &table.IsActive, &table.CreatedAt)
}

func (r *ReservationRepo) GetTable(id int) (*domain.Table, error) {
	var table domain.Table
	err := r.DB.QueryRow(
		"SELECT id, number, capacity, is_active, created_at FROM tables WHERE id = $1",
		id,
	).Scan(&table.ID, &table.Number, &table.Capacity, &table.IsActive, &table.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *ReservationRepo) ListTables() ([]domain.Table, error) {
	rows, err := r.DB.Query("SELECT id, number, capacity, is_active, created_at FROM tables ORDER BY number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []domain.Table
	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(&table.ID, &table.Number, &table.Capacity, &table.IsActive, &table.CreatedAt); err != nil {
			continue
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func (r *ReservationRepo) UpdateTable(id, number, capacity int, isActive *bool) (*domain.Table, error) {
	var table domain.Table
	err := r.DB.QueryRow(`
		UPDATE tables
		SET number = CASE WHEN $1 > 0 THEN $1 ELSE number END,
		    capacity = CASE WHEN $2 > 0 THEN $2 ELSE capacity END,
		    is_active = COALESCE($3, is_active)
		WHERE id = $4
		RETURNING id, number, capacity, is_active, created_at`,
		number, capacity, isActive, id,
	).Scan(&table.ID, &table.Number, &table.Capacity, &table.IsActive, &table.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *ReservationRepo) DeleteTable(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM tables WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CreateReservation relies on the partial unique index on (table_id, reserved_at)
// to reject conflicting live bookings; callers map the unique violation.
func (r *ReservationRepo) CreateReservation(res *domain.Reservation) error {
	return r.DB.QueryRow(
		"INSERT INTO reservations (user_id, table_id, reserved_at, status) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		res.UserID, res.TableID, res.ReservedAt, res.Status,
	).Scan(&res.ID, &res.CreatedAt)
}

func (r *ReservationRepo) GetReservation(id int) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.DB.QueryRow(
		"SELECT id, user_id, table_id, reserved_at, status, created_at FROM reservations WHERE id = $1",
		id,
	).Scan(&res.ID, &res.UserID, &res.TableID, &res.ReservedAt, &res.Status, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepo) UpdateReservation(id, tableID int, reservedAt time.Time, status string) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.DB.QueryRow(`
		UPDATE reservations
		SET table_id = $1, reserved_at = $2, status = $3
		WHERE id = $4
		RETURNING id, user_id, table_id, reserved_at, status, created_at`,
		tableID, reservedAt, status, id,
	).Scan(&res.ID, &res.UserID, &res.TableID, &res.ReservedAt, &res.Status, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelReservation is a no-op for already-cancelled rows; the rows-affected
// count tells the caller which case it hit.
func (r *ReservationRepo) CancelReservation(id int) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE reservations SET status = 'Cancelled' WHERE id = $1 AND status <> 'Cancelled'",
		id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *ReservationRepo) ListByUser(userID int) ([]domain.Reservation, error) {
	return r.list("SELECT id, user_id, table_id, reserved_at, status, created_at FROM reservations WHERE user_id = $1 ORDER BY reserved_at DESC", userID)
}

func (r *ReservationRepo) ListByRange(from, to time.Time) ([]domain.Reservation, error) {
	return r.list("SELECT id, user_id, table_id, reserved_at, status, created_at FROM reservations WHERE reserved_at >= $1 AND reserved_at < $2 ORDER BY reserved_at", from, to)
}

func (r *ReservationRepo) ListAll() ([]domain.Reservation, error) {
	return r.list("SELECT id, user_id, table_id, reserved_at, status, created_at FROM reservations ORDER BY reserved_at DESC")
}

// ReservedSlots returns the live (non-cancelled) reservation instants for a
// table inside [from, to).
func (r *ReservationRepo) ReservedSlots(tableID int, from, to time.Time) ([]time.Time, error) {
	rows, err := r.DB.Query(`
		SELECT reserved_at FROM reservations
		WHERE table_id = $1 AND reserved_at >= $2 AND reserved_at < $3 AND status <> 'Cancelled'`,
		tableID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []time.Time
	for rows.Next() {
		var at time.Time
		if err := rows.Scan(&at); err != nil {
			continue
		}
		slots = append(slots, at)
	}
	return slots, nil
}

func (r *ReservationRepo) list(query string, args ...interface{}) ([]domain.Reservation, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.UserID, &res.TableID, &res.ReservedAt, &res.Status, &res.CreatedAt); err != nil {
			continue
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}
