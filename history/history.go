// SPDX-License-Identifier: MIT

package history

import "strings"

// Order is the chronological direction in which a History stores its draws.
type Order int

const (
	// NewestFirst stores the most recent draw at position 0.
	NewestFirst Order = iota
	// OldestFirst stores the earliest draw at position 0.
	OldestFirst
)

// String returns the canonical flag spelling of o.
func (o Order) String() string {
	switch o {
	case NewestFirst:
		return "newest-first"
	case OldestFirst:
		return "oldest-first"
	default:
		return "unknown"
	}
}

// ParseOrder accepts "newest-first"/"newest" and "oldest-first"/"oldest".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "newest-first", "newest", "desc":
		return NewestFirst, nil
	case "oldest-first", "oldest", "asc":
		return OldestFirst, nil
	default:
		return 0, ErrUnknownOrder
	}
}

// History is an immutable, ordered sequence of draws.
// All positional accessors are newest-first: At(0) is the latest draw.
type History struct {
	order Order
	draws []Draw
}

// New builds a History from draws stored in the given order. The slice is
// copied so later mutation by the caller cannot leak in.
// Returns ErrUnknownOrder for an invalid order.
func New(order Order, draws []Draw) (History, error) {
	if order != NewestFirst && order != OldestFirst {
		return History{}, ErrUnknownOrder
	}
	cp := make([]Draw, len(draws))
	copy(cp, draws)
	return History{order: order, draws: cp}, nil
}

// MustNew is New for literals in tests and examples; it panics on error.
func MustNew(order Order, draws ...Draw) History {
	h, err := New(order, draws)
	if err != nil {
		panic(err)
	}
	return h
}

// Order reports the storage direction of h.
func (h History) Order() Order { return h.order }

// Len returns the number of draws in h.
func (h History) Len() int { return len(h.draws) }

// Empty reports whether h has no draws.
func (h History) Empty() bool { return len(h.draws) == 0 }

// pos maps a newest-first index to a storage position.
func (h History) pos(i int) int {
	if h.order == OldestFirst {
		return len(h.draws) - 1 - i
	}
	return i
}

// At returns the draw i steps back from the newest (At(0) is the newest).
// Returns ErrIndexOutOfRange when i is outside [0, Len).
func (h History) At(i int) (Draw, error) {
	if i < 0 || i >= len(h.draws) {
		return Draw{}, ErrIndexOutOfRange
	}
	return h.draws[h.pos(i)], nil
}

// MustAt is At for indexes already known to be in range.
func (h History) MustAt(i int) Draw {
	return h.draws[h.pos(i)]
}

// Recent returns the k newest draws as a History view. k is clamped to
// [0, Len].
func (h History) Recent(k int) History {
	k = clamp(k, len(h.draws))
	if h.order == OldestFirst {
		return History{order: h.order, draws: h.draws[len(h.draws)-k:]}
	}
	return History{order: h.order, draws: h.draws[:k]}
}

// Older returns every draw strictly older than At(i), as a History view.
// Older(-1) is h itself; for i ≥ Len-1 the result is empty.
func (h History) Older(i int) History {
	skip := clamp(i+1, len(h.draws))
	if h.order == OldestFirst {
		return History{order: h.order, draws: h.draws[:len(h.draws)-skip]}
	}
	return History{order: h.order, draws: h.draws[skip:]}
}

// NewestFirst returns a copy of h stored newest-first.
// Complexity: O(n).
func (h History) NewestFirst() History {
	out := make([]Draw, len(h.draws))
	for i := range out {
		out[i] = h.draws[h.pos(i)]
	}
	return History{order: NewestFirst, draws: out}
}

// Draws returns a copy of the draws in newest-first order.
func (h History) Draws() []Draw {
	return h.NewestFirst().draws
}

// Each calls fn for every draw newest-first with its index, stopping early
// when fn returns false.
func (h History) Each(fn func(i int, d Draw) bool) {
	for i := 0; i < len(h.draws); i++ {
		if !fn(i, h.draws[h.pos(i)]) {
			return
		}
	}
}

func clamp(k, n int) int {
	if k < 0 {
		return 0
	}
	if k > n {
		return n
	}
	return k
}
