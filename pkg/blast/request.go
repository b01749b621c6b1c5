package blast

import "net/url"

// SearchRequest describes one search submission.
type SearchRequest struct {
	Program  string
	Database string
	// Query is the percent-encoded query payload, already prepared by the
	// query package.
	Query string
	// Extra holds service parameters implied by a program alias.
	Extra map[string]string
}

// NewSearchRequest builds a submission for the given program, database and
// encoded query payload. Program aliases are resolved here, so the request
// always names a program the service runs directly.
func NewSearchRequest(program, database, encodedQuery string) SearchRequest {
	resolved, extra := NormalizeProgram(program)
	return SearchRequest{
		Program:  resolved,
		Database: database,
		Query:    encodedQuery,
		Extra:    extra,
	}
}

// NormalizeProgram maps the two legacy program aliases onto the program
// the service actually runs plus the parameters that select the variant.
// Every other name passes through untouched, known or not; the service
// rejects what it does not support.
func NormalizeProgram(program string) (string, map[string]string) {
	switch program {
	case "megablast":
		return "blastn", map[string]string{"MEGABLAST": "on"}
	case "rpsblast":
		return "blastp", map[string]string{"SERVICE": "rpsblast"}
	default:
		return program, nil
	}
}

// Values returns the full submission parameter set.
func (r SearchRequest) Values() url.Values {
	v := url.Values{
		"CMD":      {"Put"},
		"PROGRAM":  {r.Program},
		"DATABASE": {r.Database},
		"QUERY":    {r.Query},
	}
	for key, val := range r.Extra {
		v.Set(key, val)
	}
	return v
}
