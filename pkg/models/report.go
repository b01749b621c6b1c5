package models

// Bindings for the service's structured result document (FORMAT_TYPE
// JSON2_S). Only the fields needed for the summary are mapped; the
// document carries far more.

// ResultDocument is the top-level result envelope.
type ResultDocument struct {
	BlastOutput2 []ReportEnvelope `json:"BlastOutput2"`
}

// ReportEnvelope wraps one report, typically one per submitted query.
type ReportEnvelope struct {
	Report Report `json:"report"`
}

// Report holds the results of a single search.
type Report struct {
	Program string  `json:"program,omitempty"`
	Version string  `json:"version,omitempty"`
	Results Results `json:"results"`
}

// Results groups the per-query search output.
type Results struct {
	Search Search `json:"search"`
}

// Search carries the query metadata and the ranked hit list.
type Search struct {
	QueryID    string `json:"query_id,omitempty"`
	QueryTitle string `json:"query_title,omitempty"`
	QueryLen   int    `json:"query_len"`
	Hits       []Hit  `json:"hits"`
}

// Hit is one matched subject sequence with its alignment segments.
type Hit struct {
	Num          int              `json:"num,omitempty"`
	Descriptions []HitDescription `json:"description"`
	Len          int              `json:"len"`
	HSPs         []HSP            `json:"hsps"`
}

// HitDescription names the matched sequence. SciName is a pointer because
// the service omits it for synthetic or unclassified subjects.
type HitDescription struct {
	ID        string  `json:"id,omitempty"`
	Accession string  `json:"accession"`
	Title     string  `json:"title"`
	SciName   *string `json:"sciname"`
	TaxID     int     `json:"taxid,omitempty"`
}

// HSP is one high-scoring alignment segment between query and subject.
type HSP struct {
	Num      int     `json:"num,omitempty"`
	BitScore float64 `json:"bit_score"`
	Score    int     `json:"score"`
	EValue   float64 `json:"evalue"`
	Identity int     `json:"identity"`
	AlignLen int     `json:"align_len"`
}

// HitSummary is the flat best-hit record the tool emits. Field order is
// the output record order.
type HitSummary struct {
	Basename        string  `json:"basename"`
	Description     string  `json:"description"`
	ScientificName  *string `json:"scientific_name"`
	MaxScore        float64 `json:"max_score"`
	TotalScore      float64 `json:"total_score"`
	QueryCover      string  `json:"query_cover"`
	EValue          float64 `json:"e_value"`
	PercentIdentity string  `json:"percent_identity"`
	AccessionLength int     `json:"accession_length"`
	Accession       string  `json:"accession"`
	QueryLength     int     `json:"query_length"`
	Sequence        string  `json:"sequence"`

	// TotalRawScore sums the segments' raw scores. It is kept for callers
	// but is not part of the emitted record.
	TotalRawScore int `json:"-"`
}
