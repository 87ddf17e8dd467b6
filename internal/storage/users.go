package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/hera-migrate/internal/common"
	"github.com/Veraticus/hera-migrate/internal/model"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// GetUserByUsername returns the user with the given username, or
// common.ErrNotFound when no such user exists.
func (s *SQLiteStorage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(username, "username"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at, updated_at FROM users WHERE username = ?", username)
	return scanUser(row)
}

func (s *SQLiteStorage) getUserByUsernameTx(ctx context.Context, tx *sql.Tx, username string) (*model.User, error) {
	row := tx.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at, updated_at FROM users WHERE username = ?", username)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user", common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

func (s *SQLiteStorage) createUserTx(ctx context.Context, tx *sql.Tx, user *model.User) error {
	result, err := tx.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)", user.Username, user.PasswordHash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("%w: user %q", common.ErrDuplicateEntry, user.Username)
		}
		return fmt.Errorf("failed to create user %q: %w", user.Username, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id
	return nil
}
