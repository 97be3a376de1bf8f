// Package vaspio defines reader options and sentinel errors for structure I/O.
package vaspio

import "errors"

// Sentinel errors for structure parsing and export.
var (
	// ErrMalformedInput indicates truncated or non-numeric POSCAR content.
	ErrMalformedInput = errors.New("vaspio: malformed input")

	// ErrMissingElementNames indicates the POSCAR jumps straight to atom
	// counts without naming the elements.
	ErrMissingElementNames = errors.New("vaspio: element names not provided")

	// ErrElementCountMismatch indicates the element list and the count line
	// have different lengths.
	ErrElementCountMismatch = errors.New("vaspio: element list and count lengths mismatch")

	// ErrNotDirectMode indicates a coordinate mode other than Direct;
	// Cartesian-mode POSCARs must be converted before entering the pipeline.
	ErrNotDirectMode = errors.New("vaspio: only Direct coordinate mode supported")

	// ErrUnknownElement indicates an element symbol with no atomic number,
	// which the EMS format requires.
	ErrUnknownElement = errors.New("vaspio: unknown element symbol")
)

// ReadOptions tunes structure parsing.
type ReadOptions struct {
	// ViewAngleCount is forwarded to crystal construction.
	ViewAngleCount int
}

// DefaultReadOptions returns parsing defaults: ViewAngleCount=10.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{ViewAngleCount: 10}
}
