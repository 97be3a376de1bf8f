// Package supercell defines options, results, and sentinel errors for growth.
package supercell

import "errors"

// Sentinel errors for supercell growth.
var (
	// ErrNilStructure is returned when the source structure is nil.
	ErrNilStructure = errors.New("supercell: structure is nil")

	// ErrBadMaxAtoms is returned when MaxAtoms is not positive.
	ErrBadMaxAtoms = errors.New("supercell: MaxAtoms must be positive")

	// ErrSingularTarget is returned when the target lattice basis is singular.
	ErrSingularTarget = errors.New("supercell: target lattice is singular")

	// ErrEmptySupercell is returned when the search frontier is exhausted
	// without a single atom landing inside the target cell.
	ErrEmptySupercell = errors.New("supercell: grown supercell is empty")
)

// GrowOptions tunes supercell growth.
type GrowOptions struct {
	// MaxAtoms bounds the accumulated atom count. It is a soft cap checked
	// between translation shells, so the final count may modestly exceed it.
	MaxAtoms int
}

// DefaultGrowOptions returns growth defaults: MaxAtoms=10000.
func DefaultGrowOptions() GrowOptions {
	return GrowOptions{MaxAtoms: 10000}
}

// GrowResult reports what a Grow call produced.
type GrowResult struct {
	// Atoms is the final atom count after deduplication.
	Atoms int
	// Shells is the number of translations that contributed surviving atoms.
	Shells int
}
