package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jvilar-bio/blastq/pkg/models"
)

// writeJSON emits the summary as an indented object. Key order follows the
// record order; a missing scientific name serializes as null.
func writeJSON(w io.Writer, s *models.HitSummary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
