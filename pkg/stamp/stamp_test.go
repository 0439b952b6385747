package stamp_test

import (
	"errors"
	"testing"
	"time"

	"item-checklist/pkg/stamp"
)

func TestNew(t *testing.T) {
	if _, err := stamp.New("UTC", ""); err != nil {
		t.Fatalf("unexpected error creating valid stamper: %v", err)
	}

	_, err := stamp.New("Invalid/Timezone", "")
	if !errors.Is(err, stamp.ErrInvalidTimezone) {
		t.Fatalf("expected ErrInvalidTimezone, got %v", err)
	}
}

func TestStamp(t *testing.T) {
	s, _ := stamp.New("UTC", "")
	at := time.Date(2024, 5, 1, 15, 30, 45, 0, time.UTC)

	if got := s.Stamp(at); got != "2024-05-01 15:30" {
		t.Errorf("Stamp() = %q", got)
	}

	custom, _ := stamp.New("UTC", time.RFC3339)
	if got := custom.Stamp(at); got != "2024-05-01T15:30:45Z" {
		t.Errorf("Stamp() with custom layout = %q", got)
	}
}

func TestStampExpr(t *testing.T) {
	s, _ := stamp.New("UTC", "")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name    string
		expr    string
		want    string
		wantErr bool
	}{
		{name: "Empty", expr: "", want: "2024-05-01 15:30"},
		{name: "Now", expr: " NOW ", want: "2024-05-01 15:30"},
		{name: "Today", expr: "today", want: "2024-05-01"},
		{name: "Tomorrow", expr: "tomorrow", want: "2024-05-02"},
		{name: "Yesterday", expr: "yesterday", want: "2024-04-30"},
		{name: "In 3 days", expr: "in 3 days", want: "2024-05-04"},
		{name: "In 2 weeks", expr: "in 2 weeks", want: "2024-05-15"},
		{name: "In 1 month", expr: "in 1 month", want: "2024-06-01"},
		{name: "Next Monday (from Wed)", expr: "next monday", want: "2024-05-06"},
		{name: "Next Wednesday (from Wed)", expr: "next wednesday", want: "2024-05-08"},
		{name: "Invalid duration", expr: "in a few days", wantErr: true},
		{name: "Invalid weekday", expr: "next funday", wantErr: true},
		{name: "Unknown", expr: "someday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.StampExpr(tt.expr, base)
			if (err != nil) != tt.wantErr {
				t.Fatalf("StampExpr() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, stamp.ErrUnknownExpr) {
					t.Errorf("expected ErrUnknownExpr, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("StampExpr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStampUsesTimezone(t *testing.T) {
	s, err := stamp.New("Asia/Ho_Chi_Minh", "")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	at := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	if got := s.Stamp(at); got != "2024-05-02 03:00" {
		t.Errorf("Stamp() = %q, want local time", got)
	}
}
