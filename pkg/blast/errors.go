package blast

import (
	"fmt"

	"github.com/jvilar-bio/blastq/pkg/models"
)

// SubmissionError reports a submission the service rejected at the
// transport level.
type SubmissionError struct {
	StatusCode int
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed with status %d", e.StatusCode)
}

// ProtocolParseError reports a submission response the service accepted
// but whose body is missing the job identifier or the time estimate.
type ProtocolParseError struct {
	Missing string // "RID", "RTOE", or "RID and RTOE"
}

func (e *ProtocolParseError) Error() string {
	return fmt.Sprintf("could not find %s in the submission response", e.Missing)
}

// StatusError reports a job that left the polling loop without results:
// the service declared it failed or expired, or answered with a body
// carrying no recognizable status marker.
type StatusError struct {
	RID    string
	Status models.JobStatus
}

func (e *StatusError) Error() string {
	switch e.Status {
	case models.JobStatusFailed:
		return fmt.Sprintf("search %s failed; please report to blast-help@ncbi.nlm.nih.gov", e.RID)
	case models.JobStatusUnknown:
		return fmt.Sprintf("search %s expired", e.RID)
	default:
		return fmt.Sprintf("search %s returned an unrecognized status", e.RID)
	}
}

// EmptyResultError reports a search that finished but produced no usable
// hit, so no summary record can be built.
type EmptyResultError struct {
	RID    string
	Reason string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("search %s produced no usable result: %s", e.RID, e.Reason)
}
