package blast

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jvilar-bio/blastq/pkg/models"
)

func TestInitialDelay(t *testing.T) {
	tests := []struct {
		rtoe int
		want time.Duration
	}{
		{0, 0},
		{1, 500 * time.Millisecond},
		{14, 7 * time.Second},
		{25, 12500 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := InitialDelay(tt.rtoe); got != tt.want {
			t.Errorf("InitialDelay(%d) = %s, want %s", tt.rtoe, got, tt.want)
		}
	}
}

func TestWaitReady_PollsUntilReady(t *testing.T) {
	polls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls++
		if polls < 3 {
			fmt.Fprint(w, "\n\tStatus=WAITING\n")
			return
		}
		fmt.Fprint(w, "\n\tStatus=READY\n")
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	handle := models.JobHandle{RID: "Q1", RTOE: 0}

	err := client.WaitReady(context.Background(), handle, PollConfig{Interval: time.Millisecond})
	if err != nil {
		t.Fatalf("WaitReady failed: %v", err)
	}
	if polls != 3 {
		t.Errorf("polls = %d, want 3", polls)
	}
}

func TestWaitReady_StopsOnTerminalStatus(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.JobStatus
	}{
		{"failed", "\n\tStatus=FAILED\n", models.JobStatusFailed},
		{"unknown", "\n\tStatus=UNKNOWN\n", models.JobStatusUnknown},
		{"unrecognized", "<html>what</html>", models.JobStatusUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				polls++
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			handle := models.JobHandle{RID: "Q1", RTOE: 0}

			err := client.WaitReady(context.Background(), handle, PollConfig{Interval: time.Millisecond})

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("expected StatusError, got %v", err)
			}
			if statusErr.Status != tt.want {
				t.Errorf("status = %s, want %s", statusErr.Status, tt.want)
			}
			if statusErr.RID != "Q1" {
				t.Errorf("rid = %q, want Q1", statusErr.RID)
			}
			if polls != 1 {
				t.Errorf("polls = %d, want 1 (terminal on first answer)", polls)
			}
		})
	}
}

func TestWaitReady_GivesUpAfterMaxWait(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "\n\tStatus=WAITING\n")
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	handle := models.JobHandle{RID: "Q1", RTOE: 0}
	cfg := PollConfig{Interval: 5 * time.Millisecond, MaxWait: 40 * time.Millisecond}

	start := time.Now()
	err := client.WaitReady(context.Background(), handle, cfg)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected WaitReady to give up, got nil")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("expected a plain timeout error, got StatusError %v", err)
	}
	if elapsed > 2*time.Second {
		t.Errorf("WaitReady took %s, ceiling did not bite", elapsed)
	}
}

func TestWaitReady_HonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "\n\tStatus=WAITING\n")
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	handle := models.JobHandle{RID: "Q1", RTOE: 0}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := client.WaitReady(ctx, handle, PollConfig{Interval: 5 * time.Millisecond})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context deadline error, got %v", err)
	}
}

func TestDefaultPollConfig(t *testing.T) {
	cfg := DefaultPollConfig()
	if cfg.Interval != 5*time.Second {
		t.Errorf("interval = %s, want 5s", cfg.Interval)
	}
	if cfg.MaxWait != 0 {
		t.Errorf("max wait = %s, want 0 (unbounded)", cfg.MaxWait)
	}
}
