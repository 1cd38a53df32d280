package store

import (
	"database/sql"
	"fmt"

	"github.com/mpfechner/movie-manager-cli/internal/util"
)

// CreateUser inserts a new user and returns its id.
// Returns util.ErrDuplicateUser if the name is already taken.
func (s *Store) CreateUser(name string) (int64, error) {
	result, err := s.db.Exec("INSERT INTO users (name) VALUES (?)", name)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, util.ErrDuplicateUser
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get user ID: %w", err)
	}

	return id, nil
}

// FindUser retrieves a user by name, or nil if no such user exists
func (s *Store) FindUser(name string) (*User, error) {
	u := &User{}
	err := s.db.QueryRow("SELECT id, name FROM users WHERE name = ?", name).Scan(&u.ID, &u.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// ListUsers retrieves all users in insertion order
func (s *Store) ListUsers() ([]*User, error) {
	rows, err := s.db.Query("SELECT id, name FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
