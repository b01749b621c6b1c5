package blast

import (
	"fmt"

	"github.com/jvilar-bio/blastq/pkg/models"
)

// Summarize reduces a result document to the flat best-hit record. The
// first report's first hit wins; scores aggregate across every one of its
// alignment segments. Basename and sequence label the record and pass
// through untouched.
func Summarize(rid string, doc *models.ResultDocument, basename, sequence string) (*models.HitSummary, error) {
	if len(doc.BlastOutput2) == 0 {
		return nil, &EmptyResultError{RID: rid, Reason: "document contains no reports"}
	}

	search := doc.BlastOutput2[0].Report.Results.Search
	if len(search.Hits) == 0 {
		return nil, &EmptyResultError{RID: rid, Reason: "no hits"}
	}

	hit := search.Hits[0]
	if len(hit.Descriptions) == 0 {
		return nil, &EmptyResultError{RID: rid, Reason: "best hit carries no description"}
	}
	if len(hit.HSPs) == 0 {
		return nil, &EmptyResultError{RID: rid, Reason: "best hit carries no alignment segments"}
	}

	var (
		maxBitScore   float64
		totalBitScore float64
		totalRaw      int
		totalIdentity int
		totalAlignLen int
	)
	for _, hsp := range hit.HSPs {
		if hsp.BitScore > maxBitScore {
			maxBitScore = hsp.BitScore
		}
		totalBitScore += hsp.BitScore
		totalRaw += hsp.Score
		totalIdentity += hsp.Identity
		totalAlignLen += hsp.AlignLen
	}

	if totalAlignLen == 0 {
		return nil, &EmptyResultError{RID: rid, Reason: "alignment segments cover no bases"}
	}
	if search.QueryLen == 0 {
		return nil, &EmptyResultError{RID: rid, Reason: "report carries no query length"}
	}

	desc := hit.Descriptions[0]

	return &models.HitSummary{
		Basename:        basename,
		Description:     desc.Title,
		ScientificName:  desc.SciName,
		MaxScore:        maxBitScore,
		TotalScore:      totalBitScore,
		TotalRawScore:   totalRaw,
		QueryCover:      fmt.Sprintf("%.0f%%", 100*float64(totalAlignLen)/float64(search.QueryLen)),
		EValue:          hit.HSPs[0].EValue,
		PercentIdentity: fmt.Sprintf("%.2f%%", 100*float64(totalIdentity)/float64(totalAlignLen)),
		AccessionLength: hit.Len,
		Accession:       desc.Accession,
		QueryLength:     search.QueryLen,
		Sequence:        sequence,
	}, nil
}
