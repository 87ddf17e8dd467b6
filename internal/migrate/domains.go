package migrate

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/hera-migrate/internal/model"
	"github.com/Veraticus/hera-migrate/internal/source"
)

// Domains lists the migrated domains in their fixed run order. Budget
// and family land first so a partial report is still useful; files are
// last because they only reference earlier records.
var Domains = []string{"budget", "family", "travel", "itinerary", "packing", "ring", "files"}

// errorLabels prefix per-record errors in the run report.
var errorLabels = map[string]string{
	"budget":    "Budget",
	"family":    "Family",
	"travel":    "Travel",
	"itinerary": "Itinerary",
	"packing":   "Packing",
	"ring":      "Ring",
	"files":     "File",
}

// batch holds every record staged for a single transaction.
type batch struct {
	budgets   []model.Budget
	family    []model.Family
	travel    []model.Travel
	itinerary []model.Itinerary
	packing   []model.Packing
	rings     []model.Ring
	files     []model.File
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// requiredField returns the trimmed string under key, erroring when the
// field is absent, empty, or not text at all.
func requiredField(rec source.Record, key string) (string, error) {
	s := rec.String(key)
	if s == "" {
		return "", fmt.Errorf("missing required field %q", key)
	}
	return s, nil
}

// intField reads a positive integer, tolerating JSON numbers and numeric
// strings. Fractional or sub-one values are record errors, not defaults;
// silently clamping a quantity would hide corrupt data.
func intField(rec source.Record, key string, def int) (int, error) {
	v := rec.Value(key)
	if v == nil {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		s := trimmed(rec.String(key))
		if s == "" {
			return def, nil
		}
		parsed := source.ParseFloat(s, -1)
		if parsed < 0 {
			return 0, fmt.Errorf("field %q is not a number: %q", key, s)
		}
		f = parsed
	}
	n := int(f)
	if float64(n) != f {
		return 0, fmt.Errorf("field %q is not a whole number: %v", key, f)
	}
	if n < 1 {
		return 0, fmt.Errorf("field %q must be positive, got %d", key, n)
	}
	return n, nil
}

// moneyField reads a monetary amount, accepting currency-formatted
// strings. Negative amounts are record errors.
func moneyField(rec source.Record, key string) (float64, error) {
	amount := source.ParseFloat(rec.Value(key), 0)
	if amount < 0 {
		return 0, fmt.Errorf("field %q must not be negative, got %v", key, amount)
	}
	return amount, nil
}

func dateField(rec source.Record, key string) *time.Time {
	if d, ok := source.ParseDate(rec.Value(key)); ok {
		return &d
	}
	return nil
}

func timeField(rec source.Record, key string) *time.Time {
	if t, ok := source.ParseTime(rec.Value(key)); ok {
		return &t
	}
	return nil
}

// normalizePriority maps loose source priorities onto the canonical set.
func normalizePriority(s, def string) string {
	switch strings.ToLower(trimmed(s)) {
	case "low":
		return model.PriorityLow
	case "medium":
		return model.PriorityMedium
	case "high":
		return model.PriorityHigh
	case "critical":
		return model.PriorityCritical
	default:
		return def
	}
}

func buildBudget(rec source.Record) (model.Budget, error) {
	category := rec.StringOr("category", "Unknown")
	amount, err := moneyField(rec, "amount")
	if err != nil {
		return model.Budget{}, fmt.Errorf("category %q: %w", category, err)
	}
	saved, err := moneyField(rec, "saved")
	if err != nil {
		return model.Budget{}, fmt.Errorf("category %q: %w", category, err)
	}

	status := model.BudgetOutstanding
	if strings.EqualFold(rec.String("status"), model.BudgetPaid) {
		status = model.BudgetPaid
	}

	return model.Budget{
		Category: category,
		Amount:   amount,
		Saved:    saved,
		Status:   status,
		Notes:    rec.String("notes"),
		Priority: normalizePriority(rec.String("priority"), model.PriorityMedium),
	}, nil
}

func buildFamily(rec source.Record) (model.Family, error) {
	name, err := requiredField(rec, "name")
	if err != nil {
		return model.Family{}, err
	}

	return model.Family{
		Name:             name,
		Relationship:     rec.String("relationship"),
		Status:           model.NormalizeFamilyStatus(rec.String("status")),
		ConversationDate: dateField(rec, "conversation_date"),
		Reaction:         rec.String("reaction"),
		Notes:            rec.String("notes"),
	}, nil
}

func buildTravel(rec source.Record) (model.Travel, error) {
	cost, err := moneyField(rec, "cost")
	if err != nil {
		return model.Travel{}, err
	}

	status := model.TravelPending
	switch {
	case strings.EqualFold(rec.String("status"), model.TravelConfirmed):
		status = model.TravelConfirmed
	case strings.EqualFold(rec.String("status"), model.TravelCancelled):
		status = model.TravelCancelled
	}

	return model.Travel{
		Type:          rec.StringOr("type", "Other"),
		Provider:      rec.String("provider"),
		Details:       rec.String("details"),
		Confirmation:  rec.String("confirmation"),
		Date:          dateField(rec, "date"),
		DepartureTime: timeField(rec, "departure_time"),
		ArrivalTime:   timeField(rec, "arrival_time"),
		Cost:          cost,
		Status:        status,
		Notes:         rec.String("notes"),
	}, nil
}

func buildItinerary(rec source.Record) (model.Itinerary, error) {
	activity, err := requiredField(rec, "activity")
	if err != nil {
		return model.Itinerary{}, err
	}
	day, err := intField(rec, "day", 1)
	if err != nil {
		return model.Itinerary{}, fmt.Errorf("activity %q: %w", activity, err)
	}

	upper := strings.ToUpper(activity)
	proposal := source.ParseBool(rec.Value("is_proposal"), false) ||
		strings.Contains(upper, "PROPOSAL") || strings.Contains(upper, "PROPOSE")

	return model.Itinerary{
		Day:        day,
		Date:       dateField(rec, "date"),
		Time:       timeField(rec, "time"),
		Activity:   activity,
		Location:   rec.String("location"),
		Completed:  source.ParseBool(rec.Value("completed"), false),
		IsProposal: proposal,
		Notes:      rec.String("notes"),
		Priority:   normalizePriority(rec.String("priority"), model.PriorityMedium),
	}, nil
}

func buildPacking(rec source.Record) (model.Packing, error) {
	item, err := requiredField(rec, "item")
	if err != nil {
		return model.Packing{}, err
	}
	quantity, err := intField(rec, "quantity", 1)
	if err != nil {
		return model.Packing{}, fmt.Errorf("item %q: %w", item, err)
	}

	// Ring-related items default to Critical; losing the ring is the
	// one unrecoverable packing failure.
	def := model.PriorityMedium
	if strings.Contains(strings.ToLower(item), "ring") {
		def = model.PriorityCritical
	}

	return model.Packing{
		Item:     item,
		Packed:   source.ParseBool(rec.Value("packed"), false),
		Category: rec.StringOr("category", "General"),
		Notes:    rec.String("notes"),
		Quantity: quantity,
		Priority: normalizePriority(rec.String("priority"), def),
	}, nil
}

func buildRing(rec source.Record) (model.Ring, error) {
	cost, err := moneyField(rec, "cost")
	if err != nil {
		return model.Ring{}, err
	}
	deposit, err := moneyField(rec, "deposit_paid")
	if err != nil {
		return model.Ring{}, err
	}

	status := model.RingResearching
	for _, known := range []string{model.RingDesigning, model.RingOrdered, model.RingComplete} {
		if strings.EqualFold(rec.String("status"), known) {
			status = known
		}
	}

	return model.Ring{
		Jeweler:          rec.String("jeweler"),
		Stone:            aliasedString(rec, "ring", "Stone"),
		Metal:            rec.String("metal"),
		StyleInspiration: aliasedString(rec, "ring", "StyleInspiration"),
		Insurance:        rec.String("insurance"),
		Status:           status,
		Cost:             cost,
		DepositPaid:      deposit,
		Notes:            rec.String("notes"),
	}, nil
}

func buildFile(rec source.Record) (model.File, error) {
	filename := rec.StringOr("filename", rec.String("original_name"))
	if filename == "" {
		return model.File{}, fmt.Errorf("missing required field %q", "filename")
	}

	// Size stays exactly as the export wrote it; bare numbers get a
	// byte suffix so the column is always human-readable.
	size := ""
	switch v := rec.Value("size").(type) {
	case string:
		size = trimmed(v)
	case nil:
	default:
		size = fmt.Sprintf("%v B", v)
	}

	fileType := strings.ToLower(rec.String("type"))
	if fileType == "" {
		fileType = strings.ToLower(filepath.Ext(filename))
	}

	return model.File{
		Filename:     filename,
		OriginalName: rec.StringOr("original_name", filename),
		Size:         size,
		Type:         fileType,
		Category:     rec.String("category"),
		Notes:        rec.String("notes"),
		Mimetype:     rec.String("mimetype"),
		UploadPath:   aliasedString(rec, "files", "UploadPath"),
	}, nil
}
