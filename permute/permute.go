// Package permute enumerates permutations of index sets in lexicographic
// order, with support for skipping whole blocks that share a common prefix.
//
// What:
//
//   - Enumerator yields every ordering of the indices 0..n-1 exactly once,
//     starting with the identity ordering and advancing by the standard
//     next-lexicographic-permutation rule.
//   - SkipRemainingAt(pos) discards every remaining ordering that shares the
//     current prefix up to and including pos, in O(n) instead of one by one.
//
// Why:
//
//   - Branch-and-bound search over visiting orders: once a partial order's
//     accumulated cost proves its completions cannot win, the whole block is
//     skipped with a single call.
//
// Complexity:
//
//   - Next:             O(n) per call (advance + snapshot).
//   - HasNext:          O(n).
//   - SkipRemainingAt:  O(n log n) for the suffix sort.
//   - Exactly n! orderings in total when SkipRemainingAt is never called.
//
// Errors:
//
//   - ErrNegativeSize: New was called with n < 0.
package permute

import (
	"errors"
	"sort"
)

// ErrNegativeSize indicates New was called with a negative set size.
var ErrNegativeSize = errors.New("permute: size must be non-negative")

// Enumerator walks the n! orderings of the indices 0..n-1 in lexicographic
// order. The zero-size enumerator yields exactly one ordering: the empty one.
//
// An Enumerator is exclusively owned by one search; it is not safe for
// concurrent use.
type Enumerator struct {
	// iteration holds the current ordering. It is the single source of truth;
	// Next hands out snapshots so callers can never corrupt it.
	iteration []int
	// started flips on the first Next call, which returns the identity
	// ordering without advancing.
	started bool
}

// New creates an Enumerator over the indices 0..n-1.
// Returns ErrNegativeSize if n < 0.
func New(n int) (*Enumerator, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &Enumerator{iteration: make([]int, n)}, nil
}

// Len returns the size of the index set being permuted.
func (e *Enumerator) Len() int {
	return len(e.iteration)
}

// HasNext reports whether another ordering remains. It is false exactly when
// the current ordering is the fully descending (lexicographically last) one.
// Before the first Next call it is always true: even n==0 yields one (empty)
// ordering.
func (e *Enumerator) HasNext() bool {
	if !e.started {
		return true
	}
	n := len(e.iteration)
	for i, v := range e.iteration {
		if v < n-1-i {
			return true
		}
	}

	return false
}

// Next returns the next ordering as a fresh snapshot. The first call returns
// the identity ordering without advancing; every later call advances to the
// next lexicographic ordering first. Once HasNext is false, Next returns nil.
func (e *Enumerator) Next() []int {
	if !e.started {
		e.started = true
		for i := range e.iteration {
			e.iteration[i] = i
		}
	} else {
		if !e.HasNext() {
			return nil
		}
		e.advance()
	}

	out := make([]int, len(e.iteration))
	copy(out, e.iteration)

	return out
}

// SkipRemainingAt reorders everything strictly right of pos into descending
// order, so the next advancement rolls the suffix over and increments the
// entry at pos itself — discarding every remaining ordering that shares the
// current prefix up to and including pos.
//
// No-op when pos is within two of the end (too little suffix to skip: the
// block being discarded would be empty), when pos is negative, or before the
// first Next call.
func (e *Enumerator) SkipRemainingAt(pos int) {
	if !e.started || pos < 0 || pos > len(e.iteration)-3 {
		return
	}
	sort.Sort(sort.Reverse(sort.IntSlice(e.iteration[pos+1:])))
}

// advance steps iteration to its next lexicographic permutation. The caller
// guarantees HasNext: a pivot always exists here.
func (e *Enumerator) advance() {
	n := len(e.iteration)

	// 1) Find the rightmost position whose value is less than a value to its
	//    right (the pivot).
	i := n - 2
	for e.iteration[i] >= e.iteration[i+1] {
		i--
	}

	// 2) Swap the pivot with the smallest value to its right that exceeds it.
	//    The suffix is descending, so that value is the rightmost exceeding one.
	j := n - 1
	for e.iteration[j] <= e.iteration[i] {
		j--
	}
	e.iteration[i], e.iteration[j] = e.iteration[j], e.iteration[i]

	// 3) Sort everything right of the pivot ascending. The suffix is still
	//    descending after the swap, so reversing it suffices.
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		e.iteration[l], e.iteration[r] = e.iteration[r], e.iteration[l]
	}
}
