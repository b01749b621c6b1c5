package models

import "testing"

func TestIsTerminalState(t *testing.T) {
	tests := []struct {
		name     string
		state    JobStatus
		terminal bool
	}{
		{"waiting keeps polling", JobStatusWaiting, false},
		{"ready is terminal", JobStatusReady, true},
		{"failed is terminal", JobStatusFailed, true},
		{"unknown is terminal", JobStatusUnknown, true},
		{"unrecognized is terminal", JobStatusUnrecognized, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTerminalState(tt.state); got != tt.terminal {
				t.Errorf("IsTerminalState(%s) = %v, want %v", tt.state, got, tt.terminal)
			}
		})
	}
}
