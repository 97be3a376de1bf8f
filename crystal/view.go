package crystal

import (
	"math"
	"sort"

	"github.com/lattikit/grainbound/geom"
)

// defaultViewAngle is returned by MutualViewingAngle when either structure
// carries no viewing angles.
var defaultViewAngle = geom.Vec3{1, 0, 0}

// computeViewAngles collects up to count unit vectors from the atom nearest
// the cell center toward its nearest neighbors, in Cartesian space.
// Structures with fewer than two atoms have no viewing angles.
func (s *Structure) computeViewAngles(count int) []geom.Vec3 {
	if len(s.atoms) < 2 || count <= 0 {
		return nil
	}
	center := geom.Vec3{0.5, 0.5, 0.5}.MulMat(s.lattice)
	cart := s.Cartesian()

	// order atoms by distance to the cell center
	order := make([]int, len(cart))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return cart[order[i]].Position.Sub(center).Norm() <
			cart[order[j]].Position.Sub(center).Norm()
	})

	central := cart[order[0]].Position
	angles := make([]geom.Vec3, 0, count)
	for _, idx := range order[1:] {
		if len(angles) == count {
			break
		}
		dir, err := cart[idx].Position.Sub(central).Normalize()
		if err != nil {
			// coincident atom, no direction to record
			continue
		}
		angles = append(angles, dir)
	}
	return angles
}

// MutualViewingAngle searches the viewing-angle sets of two structures for a
// pair within tol of being parallel or antiparallel and returns their
// bisector (u+v)/2. When either set is empty it returns (1,0,0); when no pair
// qualifies it falls back to a's first viewing angle. Advisory only — callers
// use the result to pick a rendering orientation, never for pruning.
func MutualViewingAngle(a, b *Structure, tol float64) (geom.Vec3, error) {
	if a == nil || b == nil {
		return geom.Vec3{}, ErrNilStructure
	}
	if len(a.viewAngles) == 0 || len(b.viewAngles) == 0 {
		return defaultViewAngle, nil
	}
	for _, u := range a.viewAngles {
		for _, v := range b.viewAngles {
			agl, err := geom.AngleBetween(u, v)
			if err != nil {
				return geom.Vec3{}, err
			}
			if agl < tol || agl > math.Pi-tol {
				return u.Add(v).Scale(0.5), nil
			}
		}
	}
	return a.viewAngles[0], nil
}
