package vaspio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattikit/grainbound/crystal"
	"github.com/lattikit/grainbound/geom"
	"github.com/lattikit/grainbound/vaspio"
)

const samplePOSCAR = `MgO rocksalt
1.0
4.2 0.0 0.0
0.0 4.2 0.0
0.0 0.0 4.2
Mg O
1 1
Direct
0.0 0.0 0.0
0.5 0.5 0.5
`

// TestReadVASP_Basic parses a well-formed POSCAR and checks every field the
// core relies on.
func TestReadVASP_Basic(t *testing.T) {
	st, err := vaspio.ReadVASP(strings.NewReader(samplePOSCAR), vaspio.DefaultReadOptions())
	require.NoError(t, err)

	assert.Equal(t, "MgO", st.Comment(), "comment is the first token")
	assert.Equal(t, geom.Identity().Scale(4.2), st.Lattice())
	assert.Equal(t, []string{"Mg", "O"}, st.Elements())
	require.Equal(t, 2, st.NumAtoms())

	atoms := st.Atoms()
	assert.Equal(t, "Mg", atoms[0].Element)
	assert.Equal(t, geom.Vec3{0, 0, 0}, atoms[0].Position)
	assert.Equal(t, "O", atoms[1].Element)
	assert.Equal(t, geom.Vec3{0.5, 0.5, 0.5}, atoms[1].Position)
}

// TestReadVASP_ScalingApplied verifies the scale factor multiplies the basis.
func TestReadVASP_ScalingApplied(t *testing.T) {
	poscar := strings.Replace(samplePOSCAR, "1.0\n", "2.0\n", 1)
	st, err := vaspio.ReadVASP(strings.NewReader(poscar), vaspio.DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, geom.Identity().Scale(8.4), st.Lattice())
}

// TestReadVASP_SelectiveDynamicsSkipped verifies the optional header line is
// tolerated.
func TestReadVASP_SelectiveDynamicsSkipped(t *testing.T) {
	poscar := strings.Replace(samplePOSCAR, "Direct\n", "Selective dynamics\nDirect\n", 1)
	st, err := vaspio.ReadVASP(strings.NewReader(poscar), vaspio.DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, st.NumAtoms())
}

// TestReadVASP_Errors drives every reader error path.
func TestReadVASP_Errors(t *testing.T) {
	cases := []struct {
		name    string
		mangle  func(string) string
		wantErr error
	}{
		{
			"CountsBeforeNames",
			func(s string) string { return strings.Replace(s, "Mg O\n1 1\n", "1 1\n", 1) },
			vaspio.ErrMissingElementNames,
		},
		{
			"LengthMismatch",
			func(s string) string { return strings.Replace(s, "1 1\n", "1 1 3\n", 1) },
			vaspio.ErrElementCountMismatch,
		},
		{
			"CartesianMode",
			func(s string) string { return strings.Replace(s, "Direct\n", "Cartesian\n", 1) },
			vaspio.ErrNotDirectMode,
		},
		{
			"TruncatedPositions",
			func(s string) string { return strings.TrimSuffix(s, "0.5 0.5 0.5\n") },
			vaspio.ErrMalformedInput,
		},
		{
			"BadBasisNumber",
			func(s string) string { return strings.Replace(s, "4.2 0.0 0.0", "4.2 oops 0.0", 1) },
			vaspio.ErrMalformedInput,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := vaspio.ReadVASP(strings.NewReader(tc.mangle(samplePOSCAR)), vaspio.DefaultReadOptions())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestReadVASP_SingularBasis verifies construction-level validation reaches
// the caller.
func TestReadVASP_SingularBasis(t *testing.T) {
	poscar := strings.Replace(samplePOSCAR, "0.0 4.2 0.0", "4.2 0.0 0.0", 1)
	_, err := vaspio.ReadVASP(strings.NewReader(poscar), vaspio.DefaultReadOptions())
	assert.ErrorIs(t, err, crystal.ErrSingularLattice)
}

// TestWriteVASP_RoundTrip writes a structure and reads it back unchanged.
func TestWriteVASP_RoundTrip(t *testing.T) {
	src, err := vaspio.ReadVASP(strings.NewReader(samplePOSCAR), vaspio.DefaultReadOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, vaspio.WriteVASP(&buf, src))

	back, err := vaspio.ReadVASP(&buf, vaspio.DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, src.Comment(), back.Comment())
	assert.Equal(t, src.Lattice(), back.Lattice())
	assert.Equal(t, src.Atoms(), back.Atoms())
}

// TestWriteVASP_GroupsElements verifies grouped header lines for a
// multi-element structure.
func TestWriteVASP_GroupsElements(t *testing.T) {
	st, err := crystal.New("t", 1.0, geom.Identity().Scale(3), []crystal.Atom{
		{Position: geom.Vec3{0.1, 0, 0}, Element: "O"},
		{Position: geom.Vec3{0.2, 0, 0}, Element: "Mg"},
		{Position: geom.Vec3{0.3, 0, 0}, Element: "O"},
	}, crystal.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, vaspio.WriteVASP(&buf, st))
	out := buf.String()
	assert.Contains(t, out, "Mg O\n1 2\n", "sorted grouping with counts")
	assert.Contains(t, out, "Direct\n")
}

// TestWriteXYZ verifies count, comment, and Cartesian rows.
func TestWriteXYZ(t *testing.T) {
	st, err := crystal.New("pair", 1.0, geom.Identity().Scale(10), []crystal.Atom{
		{Position: geom.Vec3{0.5, 0, 0}, Element: "X"},
	}, crystal.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, vaspio.WriteXYZ(&buf, st))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1", lines[0])
	assert.Equal(t, "pair", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "X 5.0000"), "Cartesian x = 5, got %q", lines[2])
}

// TestWriteEMS verifies atomic number lookup and the trailing terminator.
func TestWriteEMS(t *testing.T) {
	st, err := crystal.New("ems", 1.0, geom.Identity().Scale(10), []crystal.Atom{
		{Position: geom.Vec3{0, 0, 0}, Element: "Si"},
		{Position: geom.Vec3{0.5, 0.5, 0.5}, Element: "Si"},
	}, crystal.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, vaspio.WriteEMS(&buf, st, 1.0, 0.05))
	out := buf.String()
	assert.Contains(t, out, "  14 ", "silicon atomic number")
	assert.True(t, strings.HasSuffix(out, "  -1"), "EMS terminator")
}

// TestWriteEMS_UnknownElement verifies ErrUnknownElement.
func TestWriteEMS_UnknownElement(t *testing.T) {
	st, err := crystal.New("ems", 1.0, geom.Identity().Scale(10), []crystal.Atom{
		{Position: geom.Vec3{0, 0, 0}, Element: "Xx"},
		{Position: geom.Vec3{0.5, 0.5, 0.5}, Element: "Xx"},
	}, crystal.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.ErrorIs(t, vaspio.WriteEMS(&buf, st, 1.0, 0.05), vaspio.ErrUnknownElement)
}
