package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"account_manager/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash, name, surname, year_of_birth, description, photo, created_at FROM users WHERE username = ?`
	selectUserByIDSQL       = `SELECT id, username, password_hash, name, surname, year_of_birth, description, photo, created_at FROM users WHERE id = ?`
	selectAllUsersSQL       = `SELECT id, username, password_hash, name, surname, year_of_birth, description, photo, created_at FROM users ORDER BY id`
	updateUserProfileSQL    = `UPDATE users SET name = ?, surname = ?, year_of_birth = ?, description = ?, photo = ? WHERE id = ?`
	deleteUserSQL           = `DELETE FROM users WHERE id = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, passwordHash, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", username, ErrDuplicateUsername)
		}
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found
// so the login path can treat unknown names and bad passwords alike.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// GetByID fetches a user by id. A missing row is ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("select user id=%d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return u, nil
}

// List returns all users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectAllUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// UpdateProfile persists the mutable profile fields of u.
func (r *UserRepository) UpdateProfile(ctx context.Context, u *models.User) error {
	_, err := r.db.ExecContext(ctx, updateUserProfileSQL,
		nullString(u.Name),
		nullString(u.Surname),
		nullInt(u.YearOfBirth),
		nullString(u.Description),
		nullString(u.Photo),
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("update user id=%d: %w", u.ID, err)
	}
	return nil
}

// Delete removes the row. A missing row is ErrNotFound.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return fmt.Errorf("delete user id=%d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for user id=%d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete user id=%d: %w", id, ErrNotFound)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u           models.User
		name        sql.NullString
		surname     sql.NullString
		year        sql.NullInt64
		description sql.NullString
		photo       sql.NullString
	)
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash,
		&name, &surname, &year, &description, &photo, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.Name = name.String
	u.Surname = surname.String
	u.Description = description.String
	u.Photo = photo.String
	if year.Valid {
		y := int(year.Int64)
		u.YearOfBirth = &y
	}
	return &u, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
