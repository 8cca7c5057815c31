package date

import (
	"testing"
	"time"
)

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}
}

func TestAppendOverwrites(t *testing.T) {
	h := new(History[float64])
	d := New(2025, time.July, 1)
	h.Append(d, 1.0)
	h.Append(d, 2.0)
	if h.Len() != 1 {
		t.Fatalf("Len() = %v want 1", h.Len())
	}
	if v, _ := h.Get(d); v != 2.0 {
		t.Errorf("Get(d) = %v want 2.0", v)
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[float64])
	// A price on Thursday and one the Monday after: the week-end has no points.
	thursday := New(2025, time.July, 3)
	monday := New(2025, time.July, 7)
	h.Append(thursday, 10)
	h.Append(monday, 11)

	testCases := []struct {
		name  string
		day   Date
		want  float64
		found bool
	}{
		{"exact match", thursday, 10, true},
		{"saturday forward-fills thursday", New(2025, time.July, 5), 10, true},
		{"sunday forward-fills thursday", New(2025, time.July, 6), 10, true},
		{"monday exact", monday, 11, true},
		{"after last uses last", New(2025, time.July, 9), 11, true},
		{"before first is not found", New(2025, time.July, 1), 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := h.ValueAsOf(tc.day)
			if found != tc.found {
				t.Fatalf("ValueAsOf(%v) found = %v, want %v", tc.day, found, tc.found)
			}
			if got != tc.want {
				t.Errorf("ValueAsOf(%v) = %v, want %v", tc.day, got, tc.want)
			}
		})
	}
}

func TestLatest(t *testing.T) {
	h := new(History[float64])
	if day, v := h.Latest(); day != (Date{}) || v != 0 {
		t.Errorf("Latest() on empty = (%v, %v), want zero values", day, v)
	}
	h.Append(New(2025, time.July, 1), 1)
	h.Append(New(2025, time.July, 3), 3)
	h.Append(New(2025, time.July, 2), 2)
	day, v := h.Latest()
	if day != New(2025, time.July, 3) || v != 3 {
		t.Errorf("Latest() = (%v, %v), want (2025-07-03, 3)", day, v)
	}
}
