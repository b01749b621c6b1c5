package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jvilar-bio/blastq/pkg/models"
)

// writeCSV emits the summary as a single comma-separated line with minimal
// quoting. encoding/csv is not used here: the quoting rule also fires on
// semicolons, which downstream spreadsheet imports treat as separators.
func writeCSV(w io.Writer, s *models.HitSummary) error {
	cols := fields(s)
	for i, col := range cols {
		cols[i] = escapeCSV(col)
	}
	_, err := fmt.Fprintln(w, strings.Join(cols, ","))
	return err
}

// escapeCSV quotes a value only when it contains a comma, semicolon or
// double quote, doubling any embedded quotes.
func escapeCSV(value string) string {
	if !strings.ContainsAny(value, `,;"`) {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
