package supercell

import (
	"math"

	"github.com/lattikit/grainbound/crystal"
	"github.com/lattikit/grainbound/geom"
)

// translation is an integer lattice-translation vector.
type translation [3]int

// seedTranslations start the frontier: the origin plus the six ± axis steps.
var seedTranslations = []translation{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
}

// searchDirections are the 20 frontier expansion steps: the six axis
// directions, the twelve two-axis diagonals, and the (±1,±1,±1) body
// diagonals retained by the original search table. Order is fixed; it
// determines enqueue order and therefore output determinism.
var searchDirections = []translation{
	{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {-1, 0, 0}, {0, -1, 0},
	{0, 0, -1}, {1, 1, 0}, {1, -1, 0}, {-1, 1, 0}, {0, 1, 1},
	{0, 1, -1}, {0, -1, 1}, {1, 0, 1}, {1, 0, -1}, {-1, 0, 1},
	{1, 1, 1}, {-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {1, -1, -1},
}

// regularizeEps strengthens the target diagonal before inversion so a
// pathological near-singular target does not abort the LU factorization.
const regularizeEps = 1e-5

// singularEps matches the lattice validity threshold used at construction.
const singularEps = 5e-4

// grower carries the mutable BFS state for one Grow call.
type grower struct {
	source    []crystal.Atom // source Cartesian snapshot
	srcLat    geom.Mat3
	targetInv geom.Mat3
	maxAtoms  int

	queue   []translation
	visited map[translation]bool
	acc     []crystal.Atom // survivors, in target-fractional coordinates
	shells  int
}

// Grow fills the parallelepiped spanned by target with periodic copies of
// st's cell and replaces st's lattice and atom set with the result. st is
// left untouched on any error.
func Grow(st *crystal.Structure, target geom.Mat3, opts GrowOptions) (GrowResult, error) {
	if st == nil {
		return GrowResult{}, ErrNilStructure
	}
	if opts.MaxAtoms <= 0 {
		return GrowResult{}, ErrBadMaxAtoms
	}
	if math.Abs(target.Det()) <= singularEps {
		return GrowResult{}, ErrSingularTarget
	}
	inv, err := target.Inverse()
	if err != nil {
		// pathological target: strengthen the diagonal and retry
		inv, err = target.Add(geom.Identity().Scale(regularizeEps)).Inverse()
		if err != nil {
			return GrowResult{}, ErrSingularTarget
		}
	}

	g := &grower{
		source:    st.Cartesian(),
		srcLat:    st.Lattice(),
		targetInv: inv,
		maxAtoms:  opts.MaxAtoms,
		queue:     append([]translation(nil), seedTranslations...),
		visited:   make(map[translation]bool, 64),
	}
	g.loop()

	atoms := dedup(g.acc)
	if len(atoms) == 0 {
		return GrowResult{}, ErrEmptySupercell
	}
	if err := st.SetLattice(target); err != nil {
		return GrowResult{}, ErrSingularTarget
	}
	st.SetAtomsDirect(atoms)
	return GrowResult{Atoms: len(atoms), Shells: g.shells}, nil
}

// loop processes the FIFO frontier until exhausted or the soft cap trips.
// The cap is only consulted between shells: a popped shell always finishes.
func (g *grower) loop() {
	for len(g.queue) > 0 && len(g.acc) <= g.maxAtoms {
		t := g.queue[0]
		g.queue = g.queue[1:]
		if g.visited[t] {
			continue
		}
		g.visited[t] = true

		if g.visitShell(t) {
			g.expand(t)
		}
	}
}

// visitShell shifts the source Cartesian set by t·srcLat, re-expresses it in
// target-fractional coordinates, and accumulates the atoms landing inside
// the unit cell. Reports whether anything survived.
func (g *grower) visitShell(t translation) bool {
	shift := geom.Vec3{float64(t[0]), float64(t[1]), float64(t[2])}.MulMat(g.srcLat)
	survived := false
	for _, a := range g.source {
		frac := a.Position.Add(shift).MulMat(g.targetInv)
		if !geom.InsideUnitCell(frac) {
			continue
		}
		g.acc = append(g.acc, crystal.Atom{Position: frac, Element: a.Element})
		survived = true
	}
	if survived {
		g.shells++
	}
	return survived
}

// expand enqueues the 20 neighbors of a productive translation, skipping
// those already visited. An empty shell enqueues nothing, which is what
// stops growth in directions that have left the target cell.
func (g *grower) expand(t translation) {
	for _, d := range searchDirections {
		next := translation{t[0] + d[0], t[1] + d[1], t[2] + d[2]}
		if !g.visited[next] {
			g.queue = append(g.queue, next)
		}
	}
}

// dedup drops exact-duplicate atom records (same position bits and element),
// keeping first occurrences in order. Shells overlap at cell boundaries when
// the target basis aligns with the source, so duplicates are expected.
func dedup(atoms []crystal.Atom) []crystal.Atom {
	seen := make(map[crystal.Atom]struct{}, len(atoms))
	out := atoms[:0:0]
	for _, a := range atoms {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
