package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/jvilar-bio/blastq/pkg/models"
)

var tableLabels = []string{
	"Basename",
	"Description",
	"Scientific Name",
	"Max Score",
	"Total Score",
	"Query Cover",
	"E-value",
	"Percent Identity",
	"Accession Length",
	"Accession",
	"Query Length",
	"Sequence",
}

// writeTable renders a field/value table for interactive use.
func writeTable(w io.Writer, s *models.HitSummary) error {
	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")

	for i, value := range fields(s) {
		table.Append(tableLabels[i], value)
	}

	table.Render()
	return nil
}
