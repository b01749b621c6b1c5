package models

// JobStatus represents the lifecycle status the search service reports for
// a submitted job.
type JobStatus string

const (
	JobStatusWaiting JobStatus = "WAITING" // search still running
	JobStatusReady   JobStatus = "READY"   // results available for retrieval
	JobStatusFailed  JobStatus = "FAILED"  // service gave up on the search
	JobStatusUnknown JobStatus = "UNKNOWN" // identifier expired or never existed

	// JobStatusUnrecognized is assigned locally when a status response
	// carries none of the known markers.
	JobStatusUnrecognized JobStatus = "UNRECOGNIZED"
)

// IsTerminalState returns true if the status ends the polling loop.
func IsTerminalState(state JobStatus) bool {
	return state == JobStatusReady || state == JobStatusFailed ||
		state == JobStatusUnknown || state == JobStatusUnrecognized
}

// JobHandle identifies a submitted search job.
type JobHandle struct {
	// RID is the request identifier assigned by the service.
	RID string `json:"rid"`
	// RTOE is the service's estimate of the time to completion, in seconds.
	RTOE int `json:"rtoe_seconds"`
}
