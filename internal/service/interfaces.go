// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/hera-migrate/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// User operations
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// Reporting operations
	RecordCounts(ctx context.Context) (map[string]int, error)
	BudgetStats(ctx context.Context) (*model.BudgetStats, error)
	FamilyStats(ctx context.Context) (*model.FamilyStats, error)
	PackingStats(ctx context.Context) (*model.PackingStats, error)
	ItineraryStats(ctx context.Context) (*model.ItineraryStats, error)

	// Schema management
	Migrate(ctx context.Context) error
	Reset(ctx context.Context) error

	// Transaction support
	BeginTx(ctx context.Context) (Transaction, error)

	Close() error
}

// Transaction provides atomic batch writes. Every staged record is
// persisted on Commit or discarded on Rollback; there are no partial
// commits within a migration run.
type Transaction interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error

	SaveBudgets(ctx context.Context, budgets []model.Budget) error
	SaveFamily(ctx context.Context, members []model.Family) error
	SaveTravel(ctx context.Context, bookings []model.Travel) error
	SaveItinerary(ctx context.Context, activities []model.Itinerary) error
	SavePacking(ctx context.Context, items []model.Packing) error
	SaveRings(ctx context.Context, rings []model.Ring) error
	SaveFiles(ctx context.Context, files []model.File) error

	Commit() error
	Rollback() error
}
