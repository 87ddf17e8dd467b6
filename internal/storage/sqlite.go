package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/hera-migrate/internal/model"
	"github.com/Veraticus/hera-migrate/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	// Validate input
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite doesn't benefit from multiple connections
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// BeginTx starts a new database transaction.
func (s *SQLiteStorage) BeginTx(ctx context.Context) (service.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	return &sqliteTransaction{
		tx:      tx,
		storage: s,
	}, nil
}

// sqliteTransaction wraps sql.Tx to implement service.Transaction.
type sqliteTransaction struct {
	tx      *sql.Tx
	storage *SQLiteStorage
}

func (t *sqliteTransaction) Commit() error {
	return t.tx.Commit()
}

func (t *sqliteTransaction) Rollback() error {
	return t.tx.Rollback()
}

// Transaction methods delegate to the main storage with the transaction.
func (t *sqliteTransaction) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(username, "username"); err != nil {
		return nil, err
	}
	return t.storage.getUserByUsernameTx(ctx, t.tx, username)
}

func (t *sqliteTransaction) CreateUser(ctx context.Context, user *model.User) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUser(user); err != nil {
		return err
	}
	return t.storage.createUserTx(ctx, t.tx, user)
}

func (t *sqliteTransaction) SaveBudgets(ctx context.Context, budgets []model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return t.storage.saveBudgetsTx(ctx, t.tx, budgets)
}

func (t *sqliteTransaction) SaveFamily(ctx context.Context, members []model.Family) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return t.storage.saveFamilyTx(ctx, t.tx, members)
}

func (t *sqliteTransaction) SaveTravel(ctx context.Context, bookings []model.Travel) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return t.storage.saveTravelTx(ctx, t.tx, bookings)
}

func (t *sqliteTransaction) SaveItinerary(ctx context.Context, activities []model.Itinerary) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return t.storage.saveItineraryTx(ctx, t.tx, activities)
}

func (t *sqliteTransaction) SavePacking(ctx context.Context, items []model.Packing) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return t.storage.savePackingTx(ctx, t.tx, items)
}

func (t *sqliteTransaction) SaveRings(ctx context.Context, rings []model.Ring) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return t.storage.saveRingsTx(ctx, t.tx, rings)
}

func (t *sqliteTransaction) SaveFiles(ctx context.Context, files []model.File) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return t.storage.saveFilesTx(ctx, t.tx, files)
}
