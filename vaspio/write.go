package vaspio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lattikit/grainbound/crystal"
)

// WriteVASP emits st as a POSCAR: comment, unit scaling, basis rows, grouped
// element names and counts, a Direct mode line, and fractional positions.
// Grouping relies on the canonical element-sorted atom order.
func WriteVASP(w io.Writer, st *crystal.Structure) error {
	if st == nil {
		return crystal.ErrNilStructure
	}
	if _, err := fmt.Fprintf(w, "%s\n1.0\n", st.Comment()); err != nil {
		return err
	}
	lattice := st.Lattice()
	for i := 0; i < 3; i++ {
		row := lattice.Row(i)
		if _, err := fmt.Fprintf(w, "%s %s %s\n",
			formatFloat(row[0]), formatFloat(row[1]), formatFloat(row[2])); err != nil {
			return err
		}
	}

	atoms := st.Atoms()
	names, counts := groupByElement(atoms)
	for i, name := range names {
		sep := " "
		if i == len(names)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%s%s", name, sep); err != nil {
			return err
		}
	}
	for i, n := range counts {
		sep := " "
		if i == len(counts)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%d%s", n, sep); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "Direct"); err != nil {
		return err
	}
	for _, a := range atoms {
		if _, err := fmt.Fprintf(w, "%.16f  %.16f  %.16f\n",
			a.Position[0], a.Position[1], a.Position[2]); err != nil {
			return err
		}
	}
	return nil
}

// WriteXYZ emits st in XYZ form: atom count, comment, then element and
// Cartesian position per atom.
func WriteXYZ(w io.Writer, st *crystal.Structure) error {
	if st == nil {
		return crystal.ErrNilStructure
	}
	cart := st.Cartesian()
	if _, err := fmt.Fprintf(w, "%d\n%s\n", len(cart), st.Comment()); err != nil {
		return err
	}
	for _, a := range cart {
		if _, err := fmt.Fprintf(w, "%s %.16f %.16f %.16f\n",
			a.Element, a.Position[0], a.Position[1], a.Position[2]); err != nil {
			return err
		}
	}
	return nil
}

// WriteEMS emits st for EMS imaging: per-axis extents of the Cartesian
// cloud, then per atom the atomic number, extent-normalized position, and
// the caller-supplied occupancy and wobble constants, terminated by -1.
func WriteEMS(w io.Writer, st *crystal.Structure, occ, wobble float64) error {
	if st == nil {
		return crystal.ErrNilStructure
	}
	cart := st.Cartesian()

	var lo, hi [3]float64
	for i, a := range cart {
		for k := 0; k < 3; k++ {
			if i == 0 || a.Position[k] < lo[k] {
				lo[k] = a.Position[k]
			}
			if i == 0 || a.Position[k] > hi[k] {
				hi[k] = a.Position[k]
			}
		}
	}
	var ext [3]float64
	for k := 0; k < 3; k++ {
		ext[k] = hi[k] - lo[k]
	}

	if _, err := fmt.Fprintf(w, "%s\n", st.Comment()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %.4f %.4f %.4f\n", ext[0], ext[1], ext[2]); err != nil {
		return err
	}
	for _, a := range cart {
		z, ok := atomicNumbers[a.Element]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownElement, a.Element)
		}
		if _, err := fmt.Fprintf(w, "  %d %.4f %.4f %.4f %.1f %.3f\n",
			z,
			a.Position[0]/ext[0], a.Position[1]/ext[1], a.Position[2]/ext[2],
			occ, wobble); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "  -1")
	return err
}

// groupByElement collapses an element-sorted atom slice into parallel name
// and count slices.
func groupByElement(atoms []crystal.Atom) ([]string, []int) {
	var names []string
	var counts []int
	for _, a := range atoms {
		if n := len(names); n > 0 && names[n-1] == a.Element {
			counts[n-1]++
			continue
		}
		names = append(names, a.Element)
		counts = append(counts, 1)
	}
	return names, counts
}

// formatFloat prints a basis component without trailing zero padding,
// matching conventional POSCAR headers.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
