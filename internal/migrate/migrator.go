// Package migrate turns a dashboard JSON export into relational records.
// Records are built in memory first; a single transaction then persists
// everything, so a failed run never leaves a half-written database.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/hera-migrate/internal/common"
	"github.com/Veraticus/hera-migrate/internal/model"
	"github.com/Veraticus/hera-migrate/internal/service"
	"github.com/Veraticus/hera-migrate/internal/source"
)

// ProgressFunc is invoked as each domain's records are constructed.
type ProgressFunc func(domain string, done, total int)

// Migrator orchestrates a migration run against a storage backend.
type Migrator struct {
	storage service.Storage
	config  Config
}

// Config holds configuration options for the migrator.
type Config struct {
	Progress          ProgressFunc
	AdminUsername     string
	AdminPassword     string
	ErrorDisplayLimit int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		AdminUsername:     "admin",
		AdminPassword:     "admin123",
		ErrorDisplayLimit: 5,
	}
}

// New creates a migrator with custom configuration. The static field
// mapping tables are validated here so a bad table fails construction
// rather than a run.
func New(storage service.Storage, config Config) (*Migrator, error) {
	if storage == nil {
		return nil, fmt.Errorf("%w: storage is required", common.ErrInvalidConfig)
	}
	if err := validateMappings(); err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	if config.AdminUsername == "" {
		config.AdminUsername = defaults.AdminUsername
	}
	if config.AdminPassword == "" {
		config.AdminPassword = defaults.AdminPassword
	}
	if config.ErrorDisplayLimit <= 0 {
		config.ErrorDisplayLimit = defaults.ErrorDisplayLimit
	}

	return &Migrator{storage: storage, config: config}, nil
}

// Run migrates the document. Per-record failures are collected in the
// result and never abort the run; only storage failures are fatal, and
// those roll back every staged write.
func (m *Migrator) Run(ctx context.Context, doc *source.Document) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: no document to migrate", common.ErrInvalidConfig)
	}

	slog.Info("🚀 Starting migration run")
	staged, result := m.build(doc)

	tx, err := m.storage.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := m.persist(ctx, tx, staged); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("rollback failed after persist error", "error", rbErr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("rollback failed after commit error", "error", rbErr)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrCommitFailed, err)
	}

	slog.Info("✅ Migration committed",
		"records", result.Total(),
		"errors", len(result.Errors))
	return result, nil
}

// DryRun reports per-domain entry counts without constructing or
// persisting anything.
func (m *Migrator) DryRun(doc *source.Document) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: no document to migrate", common.ErrInvalidConfig)
	}

	result := newResult()
	for _, domain := range Domains {
		result.Counts[domain] = doc.Len(domain)
	}
	return result, nil
}

// build constructs every domain's records in the fixed domain order.
// One bad record costs that record, nothing else.
func (m *Migrator) build(doc *source.Document) (*batch, *Result) {
	staged := &batch{}
	result := newResult()

	for _, domain := range Domains {
		entries, ok := doc.Section(domain)
		if !ok {
			slog.Warn("⏭️ Skipping absent domain", "domain", domain)
			continue
		}

		count := 0
		for i, entry := range entries {
			rec, err := source.AsRecord(entry)
			if err == nil {
				err = staged.add(domain, rec)
			}
			if err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("%s: %v", errorLabels[domain], err))
			} else {
				count++
			}
			if m.config.Progress != nil {
				m.config.Progress(domain, i+1, len(entries))
			}
		}

		result.Counts[domain] = count
		slog.Info("📦 Built domain records",
			"domain", domain,
			"count", count,
			"skipped", len(entries)-count)
	}

	return staged, result
}

// add builds one record through the domain's builder and stages it.
func (b *batch) add(domain string, rec source.Record) error {
	switch domain {
	case "budget":
		item, err := buildBudget(rec)
		if err != nil {
			return err
		}
		b.budgets = append(b.budgets, item)
	case "family":
		member, err := buildFamily(rec)
		if err != nil {
			return err
		}
		b.family = append(b.family, member)
	case "travel":
		booking, err := buildTravel(rec)
		if err != nil {
			return err
		}
		b.travel = append(b.travel, booking)
	case "itinerary":
		activity, err := buildItinerary(rec)
		if err != nil {
			return err
		}
		b.itinerary = append(b.itinerary, activity)
	case "packing":
		item, err := buildPacking(rec)
		if err != nil {
			return err
		}
		b.packing = append(b.packing, item)
	case "ring":
		ring, err := buildRing(rec)
		if err != nil {
			return err
		}
		b.rings = append(b.rings, ring)
	case "files":
		file, err := buildFile(rec)
		if err != nil {
			return err
		}
		b.files = append(b.files, file)
	default:
		return fmt.Errorf("unknown domain %q", domain)
	}
	return nil
}

// persist writes the bootstrap user and every staged record inside tx.
func (m *Migrator) persist(ctx context.Context, tx service.Transaction, staged *batch) error {
	if err := m.ensureAdminUser(ctx, tx); err != nil {
		return err
	}

	if err := tx.SaveBudgets(ctx, staged.budgets); err != nil {
		return fmt.Errorf("failed to save budget records: %w", err)
	}
	if err := tx.SaveFamily(ctx, staged.family); err != nil {
		return fmt.Errorf("failed to save family records: %w", err)
	}
	if err := tx.SaveTravel(ctx, staged.travel); err != nil {
		return fmt.Errorf("failed to save travel records: %w", err)
	}
	if err := tx.SaveItinerary(ctx, staged.itinerary); err != nil {
		return fmt.Errorf("failed to save itinerary records: %w", err)
	}
	if err := tx.SavePacking(ctx, staged.packing); err != nil {
		return fmt.Errorf("failed to save packing records: %w", err)
	}
	if err := tx.SaveRings(ctx, staged.rings); err != nil {
		return fmt.Errorf("failed to save ring records: %w", err)
	}
	if err := tx.SaveFiles(ctx, staged.files); err != nil {
		return fmt.Errorf("failed to save file records: %w", err)
	}
	return nil
}

// ensureAdminUser creates the dashboard login inside the transaction if
// it does not already exist, so repeat runs stay idempotent.
func (m *Migrator) ensureAdminUser(ctx context.Context, tx service.Transaction) error {
	_, err := tx.GetUserByUsername(ctx, m.config.AdminUsername)
	if err == nil {
		slog.Debug("Bootstrap user already exists", "username", m.config.AdminUsername)
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("failed to look up bootstrap user: %w", err)
	}

	user := &model.User{Username: m.config.AdminUsername}
	if err := user.SetPassword(m.config.AdminPassword); err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}
	if err := tx.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create bootstrap user: %w", err)
	}

	slog.Info("👤 Created bootstrap user", "username", m.config.AdminUsername)
	return nil
}
