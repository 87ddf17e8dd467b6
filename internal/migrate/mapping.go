package migrate

import (
	"fmt"
	"reflect"

	"github.com/Veraticus/hera-migrate/internal/common"
	"github.com/Veraticus/hera-migrate/internal/model"
	"github.com/Veraticus/hera-migrate/internal/source"
)

// fieldMapping binds one target record field to the source document keys
// that may carry it. Most fields have a single source key; a few carry
// aliases from older exports (the ring sheet used "stones" and
// "ring_style_inspiration", file records used "path").
type fieldMapping struct {
	Target  string
	Sources []string
}

// domainMapping describes how one domain's source records map onto its
// typed target record.
type domainMapping struct {
	record   any
	mappings []fieldMapping
}

var domainFieldMappings = map[string]domainMapping{
	"budget": {record: model.Budget{}, mappings: []fieldMapping{
		{Target: "Category", Sources: []string{"category"}},
		{Target: "Amount", Sources: []string{"amount"}},
		{Target: "Saved", Sources: []string{"saved"}},
		{Target: "Status", Sources: []string{"status"}},
		{Target: "Notes", Sources: []string{"notes"}},
		{Target: "Priority", Sources: []string{"priority"}},
	}},
	"family": {record: model.Family{}, mappings: []fieldMapping{
		{Target: "Name", Sources: []string{"name"}},
		{Target: "Relationship", Sources: []string{"relationship"}},
		{Target: "Status", Sources: []string{"status"}},
		{Target: "ConversationDate", Sources: []string{"conversation_date"}},
		{Target: "Reaction", Sources: []string{"reaction"}},
		{Target: "Notes", Sources: []string{"notes"}},
	}},
	"travel": {record: model.Travel{}, mappings: []fieldMapping{
		{Target: "Type", Sources: []string{"type"}},
		{Target: "Provider", Sources: []string{"provider"}},
		{Target: "Details", Sources: []string{"details"}},
		{Target: "Confirmation", Sources: []string{"confirmation"}},
		{Target: "Date", Sources: []string{"date"}},
		{Target: "DepartureTime", Sources: []string{"departure_time"}},
		{Target: "ArrivalTime", Sources: []string{"arrival_time"}},
		{Target: "Cost", Sources: []string{"cost"}},
		{Target: "Status", Sources: []string{"status"}},
		{Target: "Notes", Sources: []string{"notes"}},
	}},
	"itinerary": {record: model.Itinerary{}, mappings: []fieldMapping{
		{Target: "Day", Sources: []string{"day"}},
		{Target: "Date", Sources: []string{"date"}},
		{Target: "Time", Sources: []string{"time"}},
		{Target: "Activity", Sources: []string{"activity"}},
		{Target: "Location", Sources: []string{"location"}},
		{Target: "Completed", Sources: []string{"completed"}},
		{Target: "IsProposal", Sources: []string{"is_proposal"}},
		{Target: "Notes", Sources: []string{"notes"}},
		{Target: "Priority", Sources: []string{"priority"}},
	}},
	"packing": {record: model.Packing{}, mappings: []fieldMapping{
		{Target: "Item", Sources: []string{"item"}},
		{Target: "Packed", Sources: []string{"packed"}},
		{Target: "Category", Sources: []string{"category"}},
		{Target: "Notes", Sources: []string{"notes"}},
		{Target: "Quantity", Sources: []string{"quantity"}},
		{Target: "Priority", Sources: []string{"priority"}},
	}},
	"ring": {record: model.Ring{}, mappings: []fieldMapping{
		{Target: "Jeweler", Sources: []string{"jeweler"}},
		{Target: "Stone", Sources: []string{"stone", "stones"}},
		{Target: "Metal", Sources: []string{"metal"}},
		{Target: "StyleInspiration", Sources: []string{"style_inspiration", "ring_style_inspiration"}},
		{Target: "Insurance", Sources: []string{"insurance"}},
		{Target: "Status", Sources: []string{"status"}},
		{Target: "Cost", Sources: []string{"cost"}},
		{Target: "DepositPaid", Sources: []string{"deposit_paid"}},
		{Target: "Notes", Sources: []string{"notes"}},
	}},
	"files": {record: model.File{}, mappings: []fieldMapping{
		{Target: "Filename", Sources: []string{"filename"}},
		{Target: "OriginalName", Sources: []string{"original_name"}},
		{Target: "Size", Sources: []string{"size"}},
		{Target: "Type", Sources: []string{"type"}},
		{Target: "Category", Sources: []string{"category"}},
		{Target: "Notes", Sources: []string{"notes"}},
		{Target: "Mimetype", Sources: []string{"mimetype"}},
		{Target: "UploadPath", Sources: []string{"upload_path", "path"}},
	}},
}

// validateMappings checks every mapping table against its target record
// type. A table that names a nonexistent field is a programmer error;
// it fails migrator construction rather than surfacing mid-run.
func validateMappings() error {
	for name, dm := range domainFieldMappings {
		typ := reflect.TypeOf(dm.record)
		for _, fm := range dm.mappings {
			if _, ok := typ.FieldByName(fm.Target); !ok {
				return fmt.Errorf("%w: domain %q maps %v to unknown field %s.%s",
					common.ErrInvalidConfig, name, fm.Sources, typ.Name(), fm.Target)
			}
			if len(fm.Sources) == 0 {
				return fmt.Errorf("%w: domain %q field %s has no source keys",
					common.ErrInvalidConfig, name, fm.Target)
			}
		}
	}
	return nil
}

// aliasedValue returns the first present source value for a target field,
// walking the field's source key aliases in declared order.
func aliasedValue(rec source.Record, domain, target string) any {
	for _, fm := range domainFieldMappings[domain].mappings {
		if fm.Target != target {
			continue
		}
		for _, key := range fm.Sources {
			if rec.Has(key) {
				return rec.Value(key)
			}
		}
	}
	return nil
}

// aliasedString is aliasedValue narrowed to trimmed string values.
func aliasedString(rec source.Record, domain, target string) string {
	s, _ := aliasedValue(rec, domain, target).(string)
	return trimmed(s)
}
