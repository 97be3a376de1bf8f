package vaspio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lattikit/grainbound/crystal"
	"github.com/lattikit/grainbound/geom"
)

// lineReader hands out whitespace-split POSCAR lines with line numbers for
// error context.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() ([]string, error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		return nil, fmt.Errorf("%w: unexpected end of input at line %d", ErrMalformedInput, lr.line+1)
	}
	lr.line++
	return strings.Fields(lr.sc.Text()), nil
}

func (lr *lineReader) floats(n int) ([]float64, error) {
	fields, err := lr.next()
	if err != nil {
		return nil, err
	}
	if len(fields) < n {
		return nil, fmt.Errorf("%w: want %d numbers at line %d, got %d", ErrMalformedInput, n, lr.line, len(fields))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q at line %d", ErrMalformedInput, fields[i], lr.line)
		}
		out[i] = v
	}
	return out, nil
}

// ReadVASP parses a POSCAR-style structure: comment, uniform scaling factor,
// three basis rows, element names and per-element counts, an optional
// "Selective dynamics" line, a Direct mode line, and the fractional atom
// positions. The parsed basis is validated through crystal construction.
func ReadVASP(r io.Reader, opts ReadOptions) (*crystal.Structure, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	comment := ""
	fields, err := lr.next()
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		comment = fields[0]
	}

	scaling, err := lr.floats(1)
	if err != nil {
		return nil, err
	}

	var basis geom.Mat3
	for i := 0; i < 3; i++ {
		row, err := lr.floats(3)
		if err != nil {
			return nil, err
		}
		basis[i] = geom.Vec3{row[0], row[1], row[2]}
	}

	names, counts, err := readElementHeader(lr)
	if err != nil {
		return nil, err
	}

	mode, err := lr.next()
	if err != nil {
		return nil, err
	}
	if len(mode) > 0 && strings.HasPrefix(mode[0], "Selective") {
		if mode, err = lr.next(); err != nil {
			return nil, err
		}
	}
	if len(mode) == 0 || (mode[0] != "Direct" && mode[0] != "D") {
		return nil, ErrNotDirectMode
	}

	var atoms []crystal.Atom
	for i, name := range names {
		for j := 0; j < counts[i]; j++ {
			pos, err := lr.floats(3)
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, crystal.Atom{
				Position: geom.Vec3{pos[0], pos[1], pos[2]},
				Element:  name,
			})
		}
	}

	return crystal.New(comment, scaling[0], basis, atoms, crystal.Options{
		ViewAngleCount: opts.ViewAngleCount,
	})
}

// readElementHeader parses the element-name line and the count line.
// A counts line with no preceding names is a hard error: positions could not
// be attributed to elements.
func readElementHeader(lr *lineReader) ([]string, []int, error) {
	fields, err := lr.next()
	if err != nil {
		return nil, nil, err
	}
	if len(fields) == 0 {
		return nil, nil, fmt.Errorf("%w: empty element line at line %d", ErrMalformedInput, lr.line)
	}
	if _, err := strconv.Atoi(fields[0]); err == nil {
		return nil, nil, ErrMissingElementNames
	}
	names := fields

	fields, err = lr.next()
	if err != nil {
		return nil, nil, err
	}
	counts := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: bad atom count %q at line %d", ErrMalformedInput, f, lr.line)
		}
		counts[i] = n
	}
	if len(names) != len(counts) {
		return nil, nil, ErrElementCountMismatch
	}
	return names, counts, nil
}
