package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-05-16T10:00:00Z", time.Date(2024, 5, 16, 10, 0, 0, 0, time.UTC)},
		{"2024-05-16T12:00:00+02:00", time.Date(2024, 5, 16, 10, 0, 0, 0, time.UTC)},
		{"2024-05-16", time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)},
		{"2024-05-16 10:00:00+00", time.Date(2024, 5, 16, 10, 0, 0, 0, time.UTC)},
		{"2024-05-16 10:00:00.5Z", time.Date(2024, 5, 16, 10, 0, 0, 500000000, time.UTC)},
		{"2024-05-16 10:00:00", time.Date(2024, 5, 16, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got.Time)
			}
		})
	}

	t.Run("rejects free text", func(t *testing.T) {
		if _, err := ParseDate("tomorrow"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(time.Date(2024, 5, 16, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60)))

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"2024-05-16T10:00:00Z"` {
		t.Errorf("expected UTC RFC 3339, got %s", data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decoded.Equal(d.Time) {
		t.Errorf("expected %v, got %v", d.Time, decoded.Time)
	}

	if err := json.Unmarshal([]byte(`123`), &decoded); err == nil {
		t.Error("expected a number to be rejected")
	}
}

func TestDate_Scan(t *testing.T) {
	want := time.Date(2024, 5, 16, 10, 0, 0, 0, time.UTC)

	for _, src := range []any{want, "2024-05-16 10:00:00+00", []byte("2024-05-16T10:00:00Z")} {
		var d Date
		if err := d.Scan(src); err != nil {
			t.Fatalf("scan %T: %v", src, err)
		}
		if !d.Equal(want) {
			t.Errorf("scan %T: expected %v, got %v", src, want, d.Time)
		}
	}

	var d Date
	if err := d.Scan(42); err == nil {
		t.Error("expected an int to be rejected")
	}
}

func TestAmount(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		got, err := ParseAmount("12.50")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 12.5 {
			t.Errorf("expected 12.5, got %v", got)
		}
		for _, bad := range []string{"", "abc", "1,5", "1e400", "-1e400"} {
			if _, err := ParseAmount(bad); err == nil {
				t.Errorf("expected %q to be rejected", bad)
			}
		}
	})

	t.Run("decode string or number", func(t *testing.T) {
		var fromString, fromNumber Amount
		if err := json.Unmarshal([]byte(`"0.10"`), &fromString); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := json.Unmarshal([]byte(`0.1`), &fromNumber); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fromString != fromNumber {
			t.Errorf("expected equal amounts, got %v and %v", fromString, fromNumber)
		}
	})

	t.Run("encode as number", func(t *testing.T) {
		data, err := json.Marshal(Amount(12.5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "12.5" {
			t.Errorf("expected 12.5, got %s", data)
		}
	})
}
