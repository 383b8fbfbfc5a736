package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, one per date.
// Dates are unique: appending to an existing date replaces the value,
// which makes same-day re-runs idempotent. The series stays sorted.
type History[T any] struct {
	days   []Date
	values []T
}

// Len returns the number of points in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Append adds a point to the history, replacing any existing value at that date.
func (h *History[T]) Append(on Date, v T) *History[T] {
	i, found := h.search(on)
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Delete removes the point at the given date, if any.
func (h *History[T]) Delete(on Date) {
	if i, found := h.search(on); found {
		h.days = slices.Delete(h.days, i, i+1)
		h.values = slices.Delete(h.values, i, i+1)
	}
}

// Get returns the value recorded exactly at 'day', if any.
func (h *History[T]) Get(day Date) (T, bool) {
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	var zero T
	return zero, false
}

// ValueAsOf returns the value on the given day, or the most recent value
// before it. It never interpolates and never returns a future sample.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}
	if i == 0 {
		// No point on or before that day.
		var zero T
		return zero, false
	}
	return h.values[i-1], true
}

// Oldest returns the first recorded point, or zero values on an empty history.
func (h *History[T]) Oldest() (Date, T) {
	if len(h.days) == 0 {
		var zero T
		return Date{}, zero
	}
	return h.days[0], h.values[0]
}

// Latest returns the last recorded point, or zero values on an empty history.
func (h *History[T]) Latest() (Date, T) {
	last := len(h.days) - 1
	if last < 0 {
		var zero T
		return Date{}, zero
	}
	return h.days[last], h.values[last]
}

// Values iterates over all points in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// search locates 'day' in the sorted days slice. When not found, the returned
// index is the insertion point that keeps the slice sorted.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, func(d, t Date) int {
		if d.Before(t) {
			return -1
		}
		if d.After(t) {
			return 1
		}
		return 0
	})
}
