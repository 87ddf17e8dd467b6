package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/hera-migrate/internal/model"
)

// ListBudgets returns all budget rows ordered by id.
func (s *SQLiteStorage) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, category, amount, saved, status, COALESCE(notes, ''), priority FROM budgets ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.Category, &b.Amount, &b.Saved, &b.Status, &b.Notes, &b.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// ListFamily returns all family rows ordered by id.
func (s *SQLiteStorage) ListFamily(ctx context.Context) ([]model.Family, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(relationship, ''), status, conversation_date,
		       COALESCE(reaction, ''), COALESCE(notes, '')
		FROM family ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query family: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var members []model.Family
	for rows.Next() {
		var m model.Family
		var conversation sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &m.Relationship, &m.Status, &conversation, &m.Reaction, &m.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan family member: %w", err)
		}
		m.ConversationDate = parseDateColumn(conversation)
		members = append(members, m)
	}
	return members, rows.Err()
}

// ListTravel returns all travel rows ordered by id.
func (s *SQLiteStorage) ListTravel(ctx context.Context) ([]model.Travel, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, COALESCE(provider, ''), COALESCE(details, ''), COALESCE(confirmation, ''),
		       date, departure_time, arrival_time, cost, status, COALESCE(notes, '')
		FROM travel ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query travel: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var bookings []model.Travel
	for rows.Next() {
		var b model.Travel
		var date, departure, arrival sql.NullString
		if err := rows.Scan(&b.ID, &b.Type, &b.Provider, &b.Details, &b.Confirmation,
			&date, &departure, &arrival, &b.Cost, &b.Status, &b.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan travel booking: %w", err)
		}
		b.Date = parseDateColumn(date)
		b.DepartureTime = parseTimeColumn(departure)
		b.ArrivalTime = parseTimeColumn(arrival)
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// ListItinerary returns all itinerary rows ordered by day, then id.
func (s *SQLiteStorage) ListItinerary(ctx context.Context) ([]model.Itinerary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, day, date, time, activity, COALESCE(location, ''), completed, is_proposal,
		       COALESCE(notes, ''), priority
		FROM itinerary ORDER BY day, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query itinerary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var activities []model.Itinerary
	for rows.Next() {
		var a model.Itinerary
		var date, tod sql.NullString
		if err := rows.Scan(&a.ID, &a.Day, &date, &tod, &a.Activity, &a.Location,
			&a.Completed, &a.IsProposal, &a.Notes, &a.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary activity: %w", err)
		}
		a.Date = parseDateColumn(date)
		a.Time = parseTimeColumn(tod)
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// ListPacking returns all packing rows ordered by id.
func (s *SQLiteStorage) ListPacking(ctx context.Context) ([]model.Packing, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, item, packed, COALESCE(category, ''), COALESCE(notes, ''), quantity, priority
		FROM packing ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query packing: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.Packing
	for rows.Next() {
		var p model.Packing
		if err := rows.Scan(&p.ID, &p.Item, &p.Packed, &p.Category, &p.Notes, &p.Quantity, &p.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan packing item: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// ListRings returns all ring rows ordered by id.
func (s *SQLiteStorage) ListRings(ctx context.Context) ([]model.Ring, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, COALESCE(jeweler, ''), COALESCE(stone, ''), COALESCE(metal, ''),
		       COALESCE(style_inspiration, ''), COALESCE(insurance, ''), status, cost, deposit_paid,
		       COALESCE(notes, '')
		FROM ring ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ring: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rings []model.Ring
	for rows.Next() {
		var r model.Ring
		if err := rows.Scan(&r.ID, &r.Jeweler, &r.Stone, &r.Metal, &r.StyleInspiration,
			&r.Insurance, &r.Status, &r.Cost, &r.DepositPaid, &r.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan ring record: %w", err)
		}
		rings = append(rings, r)
	}
	return rings, rows.Err()
}

// ListFiles returns all file rows ordered by id.
func (s *SQLiteStorage) ListFiles(ctx context.Context) ([]model.File, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, original_name, COALESCE(size, ''), COALESCE(type, ''),
		       COALESCE(category, ''), COALESCE(notes, ''), COALESCE(mimetype, ''), COALESCE(upload_path, '')
		FROM files ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var files []model.File
	for rows.Next() {
		var f model.File
		if err := rows.Scan(&f.ID, &f.Filename, &f.OriginalName, &f.Size, &f.Type,
			&f.Category, &f.Notes, &f.Mimetype, &f.UploadPath); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}
