// Package blast implements a client for the NCBI BLAST URL API: job
// submission, status polling and retrieval of the structured result
// document.
package blast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/jvilar-bio/blastq/pkg/logging"
	"github.com/jvilar-bio/blastq/pkg/models"
)

// DefaultEndpoint is the public entry point of the search service.
const DefaultEndpoint = "https://blast.ncbi.nlm.nih.gov/blast/Blast.cgi"

// UserAgent identifies the tool on every request, as the service's usage
// policy asks of scripted clients.
const UserAgent = "blastq/1.2 (+https://github.com/jvilar-bio/blastq)"

var (
	ridPattern  = regexp.MustCompile(`(?m)^\s*RID\s*=\s*(\S+)`)
	rtoePattern = regexp.MustCompile(`(?m)^\s*RTOE\s*=\s*(\d+)`)
)

// Client manages communication with the search service. All requests pass
// through a shared rate limiter so a hot loop cannot exceed the service's
// usage policy.
type Client struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *logging.Logger
}

// NewClient creates a new search client. An empty endpoint selects the
// public service.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(1), 3),
		logger:  logging.NewLogger(logging.INFO, false),
	}
}

// SetLogger replaces the client's logger.
func (c *Client) SetLogger(logger *logging.Logger) {
	c.logger = logger
}

// SetRateLimit replaces the client's request rate limit.
func (c *Client) SetRateLimit(rps float64, burst int) {
	c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

// Endpoint returns the service URL the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// get performs one rate-limited GET and returns the body and HTTP status.
func (c *Client) get(ctx context.Context, params url.Values) (string, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to reach search service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read response: %w", err)
	}

	return string(body), resp.StatusCode, nil
}

// Submit sends the search request and parses the job handle out of the
// submission response.
func (c *Client) Submit(ctx context.Context, req SearchRequest) (models.JobHandle, error) {
	c.logger.Info(fmt.Sprintf("Submitting %s search against %s", req.Program, req.Database))

	body, status, err := c.get(ctx, req.Values())
	if err != nil {
		return models.JobHandle{}, err
	}
	if status >= 400 {
		return models.JobHandle{}, &SubmissionError{StatusCode: status}
	}

	handle, err := parseJobHandle(body)
	if err != nil {
		return models.JobHandle{}, err
	}

	c.logger.Info("Search submitted", map[string]interface{}{
		"rid":          handle.RID,
		"rtoe_seconds": handle.RTOE,
	})
	return handle, nil
}

// parseJobHandle extracts the RID and RTOE lines from a submission
// response body.
func parseJobHandle(body string) (models.JobHandle, error) {
	ridMatch := ridPattern.FindStringSubmatch(body)
	rtoeMatch := rtoePattern.FindStringSubmatch(body)

	switch {
	case ridMatch == nil && rtoeMatch == nil:
		return models.JobHandle{}, &ProtocolParseError{Missing: "RID and RTOE"}
	case ridMatch == nil:
		return models.JobHandle{}, &ProtocolParseError{Missing: "RID"}
	case rtoeMatch == nil:
		return models.JobHandle{}, &ProtocolParseError{Missing: "RTOE"}
	}

	rtoe, err := strconv.Atoi(rtoeMatch[1])
	if err != nil {
		return models.JobHandle{}, &ProtocolParseError{Missing: "RTOE"}
	}

	return models.JobHandle{RID: ridMatch[1], RTOE: rtoe}, nil
}

// CheckStatus asks the service for the job's current lifecycle status.
// Classification reads the body only; an error page without any marker
// comes back as unrecognized regardless of the HTTP status.
func (c *Client) CheckStatus(ctx context.Context, rid string) (models.JobStatus, error) {
	params := url.Values{
		"CMD":           {"Get"},
		"FORMAT_OBJECT": {"SearchInfo"},
		"RID":           {rid},
	}

	body, _, err := c.get(ctx, params)
	if err != nil {
		return "", err
	}

	return ClassifyStatus(body), nil
}

// FetchResults retrieves the structured result document for a finished job.
func (c *Client) FetchResults(ctx context.Context, rid string) (*models.ResultDocument, error) {
	params := url.Values{
		"CMD":         {"Get"},
		"FORMAT_TYPE": {"JSON2_S"},
		"RID":         {rid},
	}

	body, _, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var doc models.ResultDocument
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode result document: %w", err)
	}

	return &doc, nil
}
