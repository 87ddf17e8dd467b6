package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Veraticus/hera-migrate/internal/model"
)

// Column formats for DATE and TIME columns.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// nullString converts an empty string into a SQL NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullDate renders an optional date as a DATE column value or NULL.
func nullDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

// nullTime renders an optional time of day as a TIME column value or NULL.
func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(timeLayout)
}

// parseDateColumn converts a scanned DATE column back into an optional date.
func parseDateColumn(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, ns.String)
	if err != nil {
		return nil
	}
	return &t
}

// parseTimeColumn converts a scanned TIME column back into an optional time of day.
func parseTimeColumn(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, ns.String)
	if err != nil {
		return nil
	}
	return &t
}

func (s *SQLiteStorage) saveBudgetsTx(ctx context.Context, tx *sql.Tx, budgets []model.Budget) error {
	if len(budgets) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO budgets (category, amount, saved, status, notes, priority)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, b := range budgets {
		if _, err := stmt.ExecContext(ctx, b.Category, b.Amount, b.Saved, b.Status, nullString(b.Notes), b.Priority); err != nil {
			return fmt.Errorf("failed to insert budget %q: %w", b.Category, err)
		}
	}
	return nil
}

func (s *SQLiteStorage) saveFamilyTx(ctx context.Context, tx *sql.Tx, members []model.Family) error {
	if len(members) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO family (name, relationship, status, conversation_date, reaction, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, m := range members {
		if _, err := stmt.ExecContext(ctx, m.Name, nullString(m.Relationship), string(m.Status),
			nullDate(m.ConversationDate), nullString(m.Reaction), nullString(m.Notes)); err != nil {
			return fmt.Errorf("failed to insert family member %q: %w", m.Name, err)
		}
	}
	return nil
}

func (s *SQLiteStorage) saveTravelTx(ctx context.Context, tx *sql.Tx, bookings []model.Travel) error {
	if len(bookings) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO travel (type, provider, details, confirmation, date, departure_time, arrival_time, cost, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, b := range bookings {
		if _, err := stmt.ExecContext(ctx, b.Type, nullString(b.Provider), nullString(b.Details),
			nullString(b.Confirmation), nullDate(b.Date), nullTime(b.DepartureTime), nullTime(b.ArrivalTime),
			b.Cost, b.Status, nullString(b.Notes)); err != nil {
			return fmt.Errorf("failed to insert travel booking %q: %w", b.Type, err)
		}
	}
	return nil
}

func (s *SQLiteStorage) saveItineraryTx(ctx context.Context, tx *sql.Tx, activities []model.Itinerary) error {
	if len(activities) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO itinerary (day, date, time, activity, location, completed, is_proposal, notes, priority)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, a := range activities {
		if _, err := stmt.ExecContext(ctx, a.Day, nullDate(a.Date), nullTime(a.Time), a.Activity,
			nullString(a.Location), a.Completed, a.IsProposal, nullString(a.Notes), a.Priority); err != nil {
			return fmt.Errorf("failed to insert itinerary activity %q: %w", a.Activity, err)
		}
	}
	return nil
}

func (s *SQLiteStorage) savePackingTx(ctx context.Context, tx *sql.Tx, items []model.Packing) error {
	if len(items) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO packing (item, packed, category, notes, quantity, priority)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, p := range items {
		if _, err := stmt.ExecContext(ctx, p.Item, p.Packed, nullString(p.Category),
			nullString(p.Notes), p.Quantity, p.Priority); err != nil {
			return fmt.Errorf("failed to insert packing item %q: %w", p.Item, err)
		}
	}
	return nil
}

func (s *SQLiteStorage) saveRingsTx(ctx context.Context, tx *sql.Tx, rings []model.Ring) error {
	if len(rings) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO ring (jeweler, stone, metal, style_inspiration, insurance, status, cost, deposit_paid, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range rings {
		if _, err := stmt.ExecContext(ctx, nullString(r.Jeweler), nullString(r.Stone), nullString(r.Metal),
			nullString(r.StyleInspiration), nullString(r.Insurance), r.Status, r.Cost, r.DepositPaid,
			nullString(r.Notes)); err != nil {
			return fmt.Errorf("failed to insert ring record: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStorage) saveFilesTx(ctx context.Context, tx *sql.Tx, files []model.File) error {
	if len(files) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO files (filename, original_name, size, type, category, notes, mimetype, upload_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, f := range files {
		if _, err := stmt.ExecContext(ctx, f.Filename, f.OriginalName, nullString(f.Size), nullString(f.Type),
			nullString(f.Category), nullString(f.Notes), nullString(f.Mimetype), nullString(f.UploadPath)); err != nil {
			return fmt.Errorf("failed to insert file %q: %w", f.Filename, err)
		}
	}
	return nil
}
