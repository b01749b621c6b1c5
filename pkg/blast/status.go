package blast

import (
	"regexp"

	"github.com/jvilar-bio/blastq/pkg/models"
)

// statusMarkers are scanned in a fixed priority order; the first match
// wins even when a body carries several markers.
var statusMarkers = []struct {
	pattern *regexp.Regexp
	status  models.JobStatus
}{
	{regexp.MustCompile(`\s+Status=WAITING`), models.JobStatusWaiting},
	{regexp.MustCompile(`\s+Status=FAILED`), models.JobStatusFailed},
	{regexp.MustCompile(`\s+Status=UNKNOWN`), models.JobStatusUnknown},
	{regexp.MustCompile(`\s+Status=READY`), models.JobStatusReady},
}

// ClassifyStatus scans a status response body for the lifecycle markers.
// A body without any marker classifies as unrecognized; callers treat
// that as terminal rather than retrying forever against garbage.
func ClassifyStatus(body string) models.JobStatus {
	for _, m := range statusMarkers {
		if m.pattern.MatchString(body) {
			return m.status
		}
	}
	return models.JobStatusUnrecognized
}
