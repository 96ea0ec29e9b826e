package storage

import (
	"database/sql"

	"tablebite/internal/domain"
)

type UserRepo struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

func (r *UserRepo) CreateUser(user *domain.User) error {
	return r.DB.QueryRow(
		"INSERT INTO users (name, email, password_hash, phone, role) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at",
		user.Name, user.Email, user.PasswordHash, user.Phone, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *UserRepo) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(
		"SELECT id, name, email, password_hash, phone, role, created_at FROM users WHERE email = $1",
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Phone, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetUserByID(id int) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(
		"SELECT id, name, email, password_hash, phone, role, created_at FROM users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Phone, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) UpdatePassword(id int, passwordHash string) error {
	_, err := r.DB.Exec("UPDATE users SET password_hash = $1 WHERE id = $2", passwordHash, id)
	return err
}

func (r *UserRepo) UpdateAccount(id int, name, phone string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(`
		UPDATE users
		SET name = COALESCE(NULLIF($1, ''), name),
		    phone = COALESCE(NULLIF($2, ''), phone)
		WHERE id = $3
		RETURNING id, name, email, phone, role, created_at`,
		name, phone, id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) UpdateRole(id int, role string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(
		"UPDATE users SET role = $1 WHERE id = $2 RETURNING id, name, email, phone, role, created_at",
		role, id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) CreateAddress(addr *domain.Address) error {
	return r.DB.QueryRow(
		"INSERT INTO addresses (user_id, street, city, state, zip) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at",
		addr.UserID, addr.Street, addr.City, addr.State, addr.Zip,
	).Scan(&addr.ID, &addr.CreatedAt)
}

func (r *UserRepo) GetAddress(id int) (*domain.Address, error) {
	var addr domain.Address
	err := r.DB.QueryRow(
		"SELECT id, user_id, street, city, state, zip, created_at FROM addresses WHERE id = $1",
		id,
	).Scan(&addr.ID, &addr.UserID, &addr.Street, &addr.City, &addr.State, &addr.Zip, &addr.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func (r *UserRepo) ListAddresses(userID int) ([]domain.Address, error) {
	rows, err := r.DB.Query(
		"SELECT id, user_id, street, city, state, zip, created_at FROM addresses WHERE user_id = $1 ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var addr domain.Address
		if err := rows.Scan(&addr.ID, &addr.UserID, &addr.Street, &addr.City, &addr.State, &addr.Zip, &addr.CreatedAt); err != nil {
			continue
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}
