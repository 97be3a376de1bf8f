package crystal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattikit/grainbound/crystal"
	"github.com/lattikit/grainbound/geom"
)

// pairAlong builds a 2-atom structure whose viewing angle points along dir
// from the cell center.
func pairAlong(t *testing.T, dir geom.Vec3) *crystal.Structure {
	t.Helper()
	off := dir.Scale(0.1)
	st, err := crystal.New("pair", 1.0, cubic(10), []crystal.Atom{
		{Position: geom.Vec3{0.5, 0.5, 0.5}, Element: "X"},
		{Position: geom.Vec3{0.5, 0.5, 0.5}.Add(off), Element: "X"},
	}, crystal.DefaultOptions())
	require.NoError(t, err)
	return st
}

// TestViewAngles_TwoAtomCell verifies a single unit direction from the
// central atom toward its neighbor.
func TestViewAngles_TwoAtomCell(t *testing.T) {
	st := pairAlong(t, geom.Vec3{1, 0, 0})
	angles := st.ViewAngles()
	require.Len(t, angles, 1)
	assert.InDelta(t, 1.0, angles[0][0], 1e-12)
	assert.InDelta(t, 0.0, angles[0][1], 1e-12)
	assert.InDelta(t, 0.0, angles[0][2], 1e-12)
}

// TestViewAngles_TooFewAtoms verifies structures with fewer than two atoms
// have no viewing angles.
func TestViewAngles_TooFewAtoms(t *testing.T) {
	st, err := crystal.New("lone", 1.0, cubic(5), []crystal.Atom{
		{Position: geom.Vec3{0, 0, 0}, Element: "X"},
	}, crystal.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, st.ViewAngles())
}

// TestViewAngles_CoincidentAtomSkipped verifies that a duplicate position
// yields no degenerate direction.
func TestViewAngles_CoincidentAtomSkipped(t *testing.T) {
	st, err := crystal.New("dup", 1.0, cubic(10), []crystal.Atom{
		{Position: geom.Vec3{0.5, 0.5, 0.5}, Element: "X"},
		{Position: geom.Vec3{0.5, 0.5, 0.5}, Element: "X"},
		{Position: geom.Vec3{0.6, 0.5, 0.5}, Element: "X"},
	}, crystal.DefaultOptions())
	require.NoError(t, err)
	angles := st.ViewAngles()
	require.Len(t, angles, 1)
	assert.InDelta(t, 1.0, angles[0].Norm(), 1e-12)
}

// TestMutualViewingAngle_ParallelPair verifies the bisector of a matching
// (parallel within tolerance) pair is returned.
func TestMutualViewingAngle_ParallelPair(t *testing.T) {
	a := pairAlong(t, geom.Vec3{1, 0, 0})
	b := pairAlong(t, geom.Vec3{1, 0, 0})

	got, err := crystal.MutualViewingAngle(a, b, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got[0], 1e-12, "bisector of two equal unit vectors")
}

// TestMutualViewingAngle_AntiparallelPair verifies antiparallel directions
// also match (angle > π − tol).
func TestMutualViewingAngle_AntiparallelPair(t *testing.T) {
	a := pairAlong(t, geom.Vec3{1, 0, 0})
	b := pairAlong(t, geom.Vec3{-1, 0, 0})

	got, err := crystal.MutualViewingAngle(a, b, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got.Norm(), 1e-12, "bisector of antiparallel unit vectors")
}

// TestMutualViewingAngle_Fallback verifies the first viewing angle of the
// first structure is returned when no pair qualifies.
func TestMutualViewingAngle_Fallback(t *testing.T) {
	a := pairAlong(t, geom.Vec3{1, 0, 0})
	b := pairAlong(t, geom.Vec3{0, 1, 0})

	tol := math.Pi / 8 // π/2 apart: no match
	got, err := crystal.MutualViewingAngle(a, b, tol)
	require.NoError(t, err)
	assert.Equal(t, a.ViewAngles()[0], got)
}

// TestMutualViewingAngle_EmptySet verifies the (1,0,0) default.
func TestMutualViewingAngle_EmptySet(t *testing.T) {
	a := pairAlong(t, geom.Vec3{1, 0, 0})
	lone, err := crystal.New("lone", 1.0, cubic(5), []crystal.Atom{
		{Position: geom.Vec3{0, 0, 0}, Element: "X"},
	}, crystal.DefaultOptions())
	require.NoError(t, err)

	got, err := crystal.MutualViewingAngle(a, lone, 0.1)
	require.NoError(t, err)
	assert.Equal(t, geom.Vec3{1, 0, 0}, got)
}

// TestMutualViewingAngle_Nil verifies ErrNilStructure.
func TestMutualViewingAngle_Nil(t *testing.T) {
	a := pairAlong(t, geom.Vec3{1, 0, 0})
	_, err := crystal.MutualViewingAngle(a, nil, 0.1)
	assert.ErrorIs(t, err, crystal.ErrNilStructure)
}
