package date

import "testing"

func TestHistory_AppendKeepsOrder(t *testing.T) {
	h := new(History[float64])
	d1, d2, d3 := New(2025, 7, 3), New(2025, 7, 1), New(2025, 7, 2)

	h.Append(d1, 3).Append(d2, 1).Append(d3, 2)

	if got, want := h.Len(), 3; got != want {
		t.Fatalf("Len() = %v, want %v", got, want)
	}
	// Points must come out in chronological order regardless of insertion order.
	var prev Date
	for on := range h.Values() {
		if !prev.IsZero() && !prev.Before(on) {
			t.Errorf("Values() out of order: %v before %v", prev, on)
		}
		prev = on
	}
}

func TestHistory_AppendReplaces(t *testing.T) {
	h := new(History[float64])
	on := New(2025, 7, 1)
	h.Append(on, 100)
	h.Append(on, 200)

	if got, want := h.Len(), 1; got != want {
		t.Errorf("Len() = %v, want %v", got, want)
	}
	if v, _ := h.Get(on); v != 200 {
		t.Errorf("Get() = %v, want 200 (last write wins)", v)
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2025, 7, 1), 10)
	h.Append(New(2025, 7, 5), 50)
	h.Append(New(2025, 7, 9), 90)

	tests := []struct {
		name   string
		day    Date
		want   float64
		wantOk bool
	}{
		{"exact match", New(2025, 7, 5), 50, true},
		{"between samples", New(2025, 7, 7), 50, true},
		{"after last", New(2025, 7, 20), 90, true},
		{"before first", New(2025, 6, 30), 0, false},
		{"first day", New(2025, 7, 1), 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(tt.day)
			if ok != tt.wantOk {
				t.Fatalf("ValueAsOf() ok = %v, want %v", ok, tt.wantOk)
			}
			if got != tt.want {
				t.Errorf("ValueAsOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHistory_OldestLatest(t *testing.T) {
	h := new(History[string])
	if on, _ := h.Oldest(); !on.IsZero() {
		t.Errorf("Oldest() on empty history = %v, want zero date", on)
	}
	h.Append(New(2025, 7, 5), "mid")
	h.Append(New(2025, 7, 1), "first")
	h.Append(New(2025, 7, 9), "last")

	if on, v := h.Oldest(); on != New(2025, 7, 1) || v != "first" {
		t.Errorf("Oldest() = %v %q, want 2025-07-01 %q", on, v, "first")
	}
	if on, v := h.Latest(); on != New(2025, 7, 9) || v != "last" {
		t.Errorf("Latest() = %v %q, want 2025-07-09 %q", on, v, "last")
	}
}

func TestHistory_Delete(t *testing.T) {
	h := new(History[float64])
	on := New(2025, 7, 1)
	h.Append(on, 10).Append(New(2025, 7, 2), 20)
	h.Delete(on)
	if got, want := h.Len(), 1; got != want {
		t.Errorf("Len() after Delete = %v, want %v", got, want)
	}
	if _, ok := h.Get(on); ok {
		t.Error("Get() found a deleted point")
	}
}
