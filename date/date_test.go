package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "canonical", in: "2025-06-01", want: New(2025, time.June, 1)},
		{name: "permissive single digits", in: "2025-6-1", want: New(2025, time.June, 1)},
		{name: "garbage", in: "yesterday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestAddNormalizes(t *testing.T) {
	d := MustParse("2025-01-31")
	if got := d.Add(1); got != MustParse("2025-02-01") {
		t.Errorf("Add(1) = %v, want 2025-02-01", got)
	}
	if got := d.Add(-31); got != MustParse("2024-12-31") {
		t.Errorf("Add(-31) = %v, want 2024-12-31", got)
	}
}

func TestMonthBoundaries(t *testing.T) {
	d := MustParse("2024-02-10")
	if got := d.StartOfMonth(); got != MustParse("2024-02-01") {
		t.Errorf("StartOfMonth() = %v", got)
	}
	if got := d.EndOfMonth(); got != MustParse("2024-02-29") {
		t.Errorf("EndOfMonth() = %v, want leap-year 2024-02-29", got)
	}
	if !d.SameMonth(MustParse("2024-02-29")) {
		t.Error("SameMonth() = false, want true")
	}
	if d.SameMonth(MustParse("2023-02-10")) {
		t.Error("SameMonth() across years = true, want false")
	}
}

func TestWindow(t *testing.T) {
	w := Window(MustParse("2025-06-10"), 7)
	if w.From != MustParse("2025-06-04") || w.To != MustParse("2025-06-10") {
		t.Fatalf("Window() = %v", w)
	}
	if got := w.Days(); got != 7 {
		t.Errorf("Days() = %d, want 7", got)
	}
	if !w.Contains(MustParse("2025-06-04")) || !w.Contains(MustParse("2025-06-10")) {
		t.Error("Contains() should include both boundaries")
	}
	if w.Contains(MustParse("2025-06-03")) || w.Contains(MustParse("2025-06-11")) {
		t.Error("Contains() should exclude days outside the window")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2025-06-01")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2025-06-01"` {
		t.Errorf("Marshal = %s", data)
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestFromUnixMilli(t *testing.T) {
	ms := MustParse("2025-06-01").UnixMilli()
	if got := FromUnixMilli(ms); got != MustParse("2025-06-01") {
		t.Errorf("FromUnixMilli(%d) = %v", ms, got)
	}
	// Late in the day still maps to the same UTC date.
	if got := FromUnixMilli(ms + 23*3600*1000); got != MustParse("2025-06-01") {
		t.Errorf("FromUnixMilli late day = %v", got)
	}
}
