package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"item-checklist/pkg/response"
)

func TestDateTimeJSON(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	tm := time.Date(2024, 5, 1, 22, 30, 0, 0, loc)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-05-01T15:30:00Z"` {
		t.Errorf("expected UTC RFC3339, got %s", b)
	}

	var back response.DateTime
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Time().Equal(tm) {
		t.Errorf("expected %v, got %v", tm, back.Time())
	}
}

func TestDateTimeUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Not a string", input: `42`},
		{name: "Wrong layout", input: `"01/05/2024"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d response.DateTime
			if err := json.Unmarshal([]byte(tt.input), &d); err == nil {
				t.Errorf("expected error for %s", tt.input)
			}
		})
	}
}
