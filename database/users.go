package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/CherDalov/Accountability-2.0/models"
)

// CreateUser registers a new account, storing a bcrypt hash of the password.
// It fails with ErrUsernameTaken when the username is already registered.
func (s *Store) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	// The check and the insert must be one atomic unit so two concurrent
	// registrations with the same username cannot both pass the check.
	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	var existing int
	err = s.db.QueryRowContext(ctx, s.rebind("SELECT COUNT(*) FROM users WHERE username = ?"), username).Scan(&existing)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing > 0 {
		return models.User{}, ErrUsernameTaken
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	_, err = s.db.ExecContext(ctx,
		s.rebind("INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)"),
		user.ID, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	s.logger.Info("user registered", "username", username)
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords both return ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx,
		s.rebind("SELECT id, username, password_hash, created_at FROM users WHERE username = ?"),
		username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// CountUsers returns the number of registered users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
