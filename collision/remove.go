package collision

import (
	"math/rand"

	"github.com/lattikit/grainbound/crystal"
	"github.com/lattikit/grainbound/geom"
)

// SafeApart reports whether two Cartesian atom records are safely separated:
// either their element pair is unconstrained, or their distance is at least
// the table threshold.
func SafeApart(tbl *Table, a, b crystal.Atom) bool {
	min, ok := tbl.Get(a.Element, b.Element)
	if !ok {
		return true
	}
	return a.Position.Sub(b.Position).Norm() >= min
}

// RemoveWithinRegion performs one sequential greedy pass over a region:
// for each atom in index order, every later atom unsafe relative to it is
// dropped from further consideration. The earlier-indexed atom always wins
// ties, so the pass is deterministic for a fixed input order and idempotent.
// The input slice is not modified.
func RemoveWithinRegion(atoms []crystal.Atom, tbl *Table) []crystal.Atom {
	out := append([]crystal.Atom(nil), atoms...)
	for i := 0; i < len(out)-1; i++ {
		w := i + 1
		for r := i + 1; r < len(out); r++ {
			if SafeApart(tbl, out[r], out[i]) {
				out[w] = out[r]
				w++
			}
		}
		out = out[:w]
	}
	return out
}

// RemoveBetweenRegions removes from pruned every atom unsafe relative to any
// atom of fixed. The fixed region is never modified, and the result never
// grows beyond pruned. Neither input slice is modified.
func RemoveBetweenRegions(fixed, pruned []crystal.Atom, tbl *Table) []crystal.Atom {
	out := make([]crystal.Atom, 0, len(pruned))
	for _, cand := range pruned {
		safe := true
		for _, f := range fixed {
			if !SafeApart(tbl, f, cand) {
				safe = false
				break
			}
		}
		if safe {
			out = append(out, cand)
		}
	}
	return out
}

// RemoveOnInterface prunes the slab around the internal interface plane at
// fractional z = 0.5 and returns the number of atoms removed.
func RemoveOnInterface(st *crystal.Structure, tbl *Table, opts Options) (int, error) {
	if st == nil {
		return 0, ErrNilStructure
	}
	if err := checkRadius(opts.BoundaryRadius); err != nil {
		return 0, err
	}
	direct, cart := st.Atoms(), st.Cartesian()
	r := opts.BoundaryRadius

	var region, rest []crystal.Atom
	for i := range direct {
		if z := direct[i].Position[2]; z > 0.5-r && z < 0.5+r {
			region = append(region, cart[i])
		} else {
			rest = append(rest, cart[i])
		}
	}
	if opts.RandomDelete {
		shuffleAtoms(opts.shuffleSource(), region)
	}
	survivors := RemoveWithinRegion(region, tbl)
	if err := st.SetAtomsCartesian(append(rest, survivors...)); err != nil {
		return 0, err
	}
	return len(region) - len(survivors), nil
}

// RemoveOnFacePair prunes the two slabs at fractional 0 and 1 along the given
// axis. The top slab is shifted by the full lattice translation along that
// axis so it sits on its periodic image at the bottom, each slab is pruned
// within itself, then the bottom slab is pruned against the (fixed) top slab.
// Returns the number of atoms removed.
func RemoveOnFacePair(st *crystal.Structure, axis int, tbl *Table, opts Options) (int, error) {
	if st == nil {
		return 0, ErrNilStructure
	}
	if axis < 0 || axis > 2 {
		return 0, ErrBadAxis
	}
	if err := checkRadius(opts.BoundaryRadius); err != nil {
		return 0, err
	}
	direct, cart := st.Atoms(), st.Cartesian()
	r := opts.BoundaryRadius

	var btm, top, rest []crystal.Atom
	for i := range direct {
		switch f := direct[i].Position[axis]; {
		case f > -r && f < r:
			btm = append(btm, cart[i])
		case f > 1-r && f < 1+r:
			top = append(top, cart[i])
		default:
			rest = append(rest, cart[i])
		}
	}
	removedFrom := len(btm) + len(top)
	if opts.RandomDelete {
		src := opts.shuffleSource()
		shuffleAtoms(src, btm)
		shuffleAtoms(src, top)
	}

	// periodic image alignment: move the top slab onto the bottom face
	shift := st.Lattice().Row(axis)
	for i := range top {
		top[i].Position = top[i].Position.Sub(shift)
	}

	top = RemoveWithinRegion(top, tbl)
	btm = RemoveWithinRegion(btm, tbl)
	btm = RemoveBetweenRegions(top, btm, tbl)

	for i := range top {
		top[i].Position = top[i].Position.Add(shift)
	}

	next := append(rest, btm...)
	next = append(next, top...)
	if err := st.SetAtomsCartesian(next); err != nil {
		return 0, err
	}
	return removedFrom - len(btm) - len(top), nil
}

// RemoveAtCorners prunes the eight corner regions created by periodic
// wrap-around. Corners are processed in the fixed {0,1}^3 enumeration order;
// a candidate is accepted only if it is safely apart from every previously
// accepted corner atom once that atom is translated to the candidate's
// periodic image. First accepted wins; rejected atoms are dropped
// permanently. Returns the number of atoms removed.
func RemoveAtCorners(st *crystal.Structure, tbl *Table, opts Options) (int, error) {
	if st == nil {
		return 0, ErrNilStructure
	}
	if err := checkRadius(opts.BoundaryRadius); err != nil {
		return 0, err
	}
	direct, cart := st.Atoms(), st.Cartesian()
	r := opts.BoundaryRadius
	lattice := st.Lattice()

	type record struct {
		frac geom.Vec3
		atom crystal.Atom // Cartesian
	}
	remaining := make([]record, len(direct))
	for i := range direct {
		remaining[i] = record{frac: direct[i].Position, atom: cart[i]}
	}

	type cornerAtom struct {
		atom crystal.Atom // Cartesian, at its own corner
		dv   geom.Vec3    // corner indicator the atom belongs to
	}
	var accepted []cornerAtom
	candidates := 0

	for _, ind := range geom.CartesianProduct([]float64{0, 1}, 3) {
		dv := geom.Vec3{ind[0], ind[1], ind[2]}

		// partition the remaining pool around this corner
		var corner []crystal.Atom
		keep := remaining[:0]
		for _, rec := range remaining {
			near := true
			for k := 0; k < 3; k++ {
				if rec.frac[k] <= dv[k]-r || rec.frac[k] >= dv[k]+r {
					near = false
					break
				}
			}
			if near {
				corner = append(corner, rec.atom)
			} else {
				keep = append(keep, rec)
			}
		}
		remaining = keep
		candidates += len(corner)

		for _, cand := range corner {
			ok := true
			for _, ca := range accepted {
				// test against the stored atom translated to this corner's
				// periodic image; the stored position itself is never moved
				moved := ca.atom
				moved.Position = moved.Position.Add(dv.Sub(ca.dv).MulMat(lattice))
				if !SafeApart(tbl, moved, cand) {
					ok = false
					break
				}
			}
			if ok {
				accepted = append(accepted, cornerAtom{atom: cand, dv: dv})
			}
		}
	}

	next := make([]crystal.Atom, 0, len(remaining)+len(accepted))
	for _, rec := range remaining {
		next = append(next, rec.atom)
	}
	for _, ca := range accepted {
		next = append(next, ca.atom)
	}
	if err := st.SetAtomsCartesian(next); err != nil {
		return 0, err
	}
	return candidates - len(accepted), nil
}

// Remove runs the full boundary pipeline — interface, the three face pairs in
// axis order, then corners — and reports per-pass and total removal counts.
// The order is fixed: earlier passes remove atoms later passes would
// otherwise test.
func Remove(st *crystal.Structure, tbl *Table, opts Options) (Result, error) {
	var res Result

	n, err := RemoveOnInterface(st, tbl, opts)
	if err != nil {
		return res, err
	}
	res.Interface = n

	for axis := 0; axis < 3; axis++ {
		n, err = RemoveOnFacePair(st, axis, tbl, opts)
		if err != nil {
			return res, err
		}
		res.Faces[axis] = n
	}

	n, err = RemoveAtCorners(st, tbl, opts)
	if err != nil {
		return res, err
	}
	res.Corners = n

	res.Total = res.Interface + res.Faces[0] + res.Faces[1] + res.Faces[2] + res.Corners
	return res, nil
}

// checkRadius validates the boundary slab thickness.
func checkRadius(r float64) error {
	if r <= 0 || r >= 0.5 {
		return ErrBadRadius
	}
	return nil
}

// shuffleAtoms permutes atoms in place with the given source.
func shuffleAtoms(src *rand.Rand, atoms []crystal.Atom) {
	src.Shuffle(len(atoms), func(i, j int) {
		atoms[i], atoms[j] = atoms[j], atoms[i]
	})
}
