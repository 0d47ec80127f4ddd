package types

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDefaultTimestampUsesNowWhenMissing(t *testing.T) {
	now := time.Date(2025, 5, 4, 10, 11, 12, 123456789, time.FixedZone("COT", -5*3600))

	got := DefaultTimestamp(nil, now)

	want := time.Date(2025, 5, 4, 15, 11, 12, 123000000, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDefaultTimestampKeepsSuppliedValue(t *testing.T) {
	supplied := Timestamp{Time: time.Date(2024, 1, 2, 3, 4, 5, 999999, time.UTC)}

	got := DefaultTimestamp(&supplied, time.Now())

	if !got.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp %v", got)
	}
}

func TestTimestampUnmarshalJSON(t *testing.T) {
	cases := map[string]time.Time{
		`"2025-01-01T10:00:00Z"`:        time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		`"2025-01-01T05:00:00-05:00"`:   time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		`"2025-01-01T10:00:00"`:         time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		`"2025-01-01T10:00:00.123456"`:  time.Date(2025, 1, 1, 10, 0, 0, 123456000, time.UTC),
		`"2025-01-01 10:00:00"`:         time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		`"2025-01-01T10:00"`:            time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		`"2025-01-01"`:                  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		`"2025-01-01T10:00:00.5+00:00"`: time.Date(2025, 1, 1, 10, 0, 0, 500000000, time.UTC),
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(input), &ts); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ts.Equal(want) {
				t.Fatalf("expected %v, got %v", want, ts.Time)
			}
		})
	}
}

func TestTimestampUnmarshalJSONNull(t *testing.T) {
	var body struct {
		At *Timestamp `json:"at"`
	}
	if err := json.Unmarshal([]byte(`{"at":null}`), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.At != nil {
		t.Fatalf("expected nil timestamp, got %v", body.At)
	}
}

func TestTimestampUnmarshalJSONRejectsInvalid(t *testing.T) {
	for _, input := range []string{`"yesterday"`, `"2025-13-01T10:00:00"`, `12345`, `true`, `{}`} {
		t.Run(input, func(t *testing.T) {
			var body struct {
				At *Timestamp `json:"at"`
			}
			err := json.Unmarshal([]byte(`{"at":`+input+`}`), &body)
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("expected type error, got %v", err)
			}
			if typeErr.Field != "at" {
				t.Fatalf("expected field at, got %q", typeErr.Field)
			}
		})
	}
}
