// Package collision defines the threshold table, options, results, and
// sentinel errors for boundary collision removal.
package collision

import (
	"errors"
	"math/rand"
)

// Sentinel errors for collision removal.
var (
	// ErrNilStructure is returned when the structure is nil.
	ErrNilStructure = errors.New("collision: structure is nil")

	// ErrBadRadius is returned when the boundary radius is outside (0, 0.5).
	// At 0.5 the two slabs of a face pair would overlap the whole cell.
	ErrBadRadius = errors.New("collision: boundary radius must be in (0, 0.5)")

	// ErrBadAxis is returned for a face-pair axis outside {0, 1, 2}.
	ErrBadAxis = errors.New("collision: axis must be 0, 1, or 2")
)

// pairKey is an order-normalized element pair.
type pairKey struct{ a, b string }

// normPair orders the two symbols once, so (A,B) and (B,A) share a key.
func normPair(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Table maps unordered element pairs to a minimum allowed separation.
// Lookup is pair-order independent. A missing pair means "no constraint":
// such atoms are always considered safely apart.
type Table struct {
	min map[pairKey]float64
}

// NewTable returns an empty (fully permissive) threshold table.
func NewTable() *Table {
	return &Table{min: make(map[pairKey]float64)}
}

// Set records the minimum separation for the unordered pair (a, b).
func (t *Table) Set(a, b string, dist float64) {
	t.min[normPair(a, b)] = dist
}

// Get returns the threshold for the unordered pair (a, b) and whether the
// pair is constrained at all.
func (t *Table) Get(a, b string) (float64, bool) {
	if t == nil || t.min == nil {
		return 0, false
	}
	d, ok := t.min[normPair(a, b)]
	return d, ok
}

// Len returns the number of constrained pairs.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.min)
}

// Options tunes collision removal.
type Options struct {
	// BoundaryRadius is the slab thickness, in fractional units, around each
	// interface, face, or corner.
	BoundaryRadius float64

	// RandomDelete shuffles each region before the greedy pass, changing
	// which member of a close pair survives.
	RandomDelete bool

	// Rand supplies the shuffle source when RandomDelete is set. A nil Rand
	// falls back to a fixed-seed source so runs stay reproducible.
	Rand *rand.Rand
}

// DefaultOptions returns removal defaults: radius 0.025, deterministic
// index-order tie-breaking.
func DefaultOptions() Options {
	return Options{BoundaryRadius: 0.025}
}

// shuffleSource resolves the rand source for shuffling regions.
func (o Options) shuffleSource() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewSource(1))
}

// Result reports atoms removed by each pass of Remove.
type Result struct {
	Interface int
	Faces     [3]int
	Corners   int
	Total     int
}
