// Package view derives ordered, filtered slices from store snapshots.
// All derivations are pure: they never mutate their input.
package view

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction orders a sorted view ascending or descending.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == Asc || d == Desc
}

// apply folds the direction into a comparator result.
func (d Direction) apply(c int) int {
	if d == Desc {
		return -c
	}
	return c
}

// Sort is a field/direction pair. The zero value means "unsorted".
type Sort[F ~string] struct {
	Field F
	Dir   Direction
}

// Toggle applies the selection rule used by list screens: picking the
// active field flips the direction, picking a new field resets to
// ascending.
func (s Sort[F]) Toggle(field F) Sort[F] {
	if s.Field == field {
		if s.Dir == Asc {
			return Sort[F]{Field: field, Dir: Desc}
		}
		return Sort[F]{Field: field, Dir: Asc}
	}
	return Sort[F]{Field: field, Dir: Asc}
}

// Comparator compares two entities under a direction. Implementations
// that must ignore the direction (nil-date ordering) receive it so
// they can decide for themselves.
type Comparator[T any] func(a, b T, dir Direction) int

// Derive filters items through keep, then stable-sorts the survivors
// with cmp. A nil keep keeps everything; a nil cmp skips sorting. The
// input slice is never modified.
func Derive[T any](items []T, keep func(T) bool, cmp Comparator[T], dir Direction) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep == nil || keep(it) {
			out = append(out, it)
		}
	}
	if cmp != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return cmp(out[i], out[j], dir) < 0
		})
	}
	return out
}

// collator is shared across derivations; collate.Collator is not safe
// for concurrent use, so compareStrings guards it.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English, collate.IgnoreCase)
)

// compareStrings is a locale-aware lexical comparison.
func compareStrings(a, b string, dir Direction) int {
	collatorMu.Lock()
	c := collator.CompareString(a, b)
	collatorMu.Unlock()
	return dir.apply(c)
}

// compareTimePtrs orders set dates numerically and places unset dates
// after set ones no matter the direction.
func compareTimePtrs(a, b *time.Time, dir Direction) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return dir.apply(a.Compare(*b))
}

func compareTimes(a, b time.Time, dir Direction) int {
	return dir.apply(a.Compare(b))
}
