// Package output renders a hit summary in the formats the tool supports.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jvilar-bio/blastq/pkg/models"
)

// Format selects the rendering of the summary record.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat validates a format selector from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON, FormatTable:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid output format %q (valid: csv, json, table)", s)
}

// Write renders the summary in the selected format.
func Write(w io.Writer, format Format, summary *models.HitSummary) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatTable:
		return writeTable(w, summary)
	default:
		return writeCSV(w, summary)
	}
}

// fields returns the record values in output order, each in its natural
// string form.
func fields(s *models.HitSummary) []string {
	return []string{
		s.Basename,
		s.Description,
		scientificName(s),
		formatFloat(s.MaxScore),
		formatFloat(s.TotalScore),
		s.QueryCover,
		formatFloat(s.EValue),
		s.PercentIdentity,
		strconv.Itoa(s.AccessionLength),
		s.Accession,
		strconv.Itoa(s.QueryLength),
		s.Sequence,
	}
}

func scientificName(s *models.HitSummary) string {
	if s.ScientificName == nil {
		return ""
	}
	return *s.ScientificName
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
