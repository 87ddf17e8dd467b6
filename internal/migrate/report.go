package migrate

import (
	"fmt"
	"strings"

	"github.com/Veraticus/hera-migrate/internal/cli"
)

// Result summarizes a migration run. Errors always holds the full list;
// rendering caps the display, never the data.
type Result struct {
	Counts map[string]int
	Errors []string
}

func newResult() *Result {
	return &Result{Counts: make(map[string]int, len(Domains))}
}

// Total reports the number of records migrated across all domains.
func (r *Result) Total() int {
	total := 0
	for _, count := range r.Counts {
		total += count
	}
	return total
}

// Render formats the run summary for the terminal, listing per-domain
// counts in run order and at most limit errors.
func (r *Result) Render(limit int) string {
	var sb strings.Builder

	sb.WriteString(cli.TitleStyle.Render("Migration summary"))
	sb.WriteString("\n")
	for _, domain := range Domains {
		count, ok := r.Counts[domain]
		line := fmt.Sprintf("  %-10s %d", domain, count)
		if !ok {
			line = fmt.Sprintf("  %-10s absent", domain)
			sb.WriteString(cli.SubtleStyle.Render(line))
		} else if count > 0 {
			sb.WriteString(cli.SuccessStyle.Render(line))
		} else {
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(cli.BoldStyle.Render(fmt.Sprintf("  %-10s %d", "total", r.Total())))
	sb.WriteString("\n")

	if len(r.Errors) == 0 {
		return sb.String()
	}

	sb.WriteString("\n")
	sb.WriteString(cli.ErrorStyle.Render(fmt.Sprintf("%d record(s) skipped:", len(r.Errors))))
	sb.WriteString("\n")
	shown := r.Errors
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, msg := range shown {
		sb.WriteString(cli.ErrorStyle.Render("  ✗ " + msg))
		sb.WriteString("\n")
	}
	if hidden := len(r.Errors) - len(shown); hidden > 0 {
		sb.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("  ... and %d more", hidden)))
		sb.WriteString("\n")
	}

	return sb.String()
}
