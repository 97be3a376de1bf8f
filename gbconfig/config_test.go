package gbconfig_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattikit/grainbound/gbconfig"
	"github.com/lattikit/grainbound/geom"
)

const fullConf = `{
  "struct_1": "grain_a.vasp",
  "struct_2": "grain_b.vasp",
  "gb_settings": [[[0, 0, 1], [1, 0, 0], 0.5235987755982988]],
  "coincident_pts_tolerance": 0.5,
  "coincident_pts_search_step": 10,
  "max_coincident_pts_searched": 50,
  "lattice_vec_agl_range": [0.1, 3.0],
  "atom_counts_range": [1000, 2000],
  "min_atom_dist": [["Mg", "O", 1.8], ["O", "O", 2.2]],
  "boundary_radius": 0.05,
  "random_delete_atom": true,
  "output_format": "xyz",
  "output_dir": "out",
  "output_name_prefix": "gb",
  "overwrite_protect": true
}`

// TestLoad_FullDocument verifies every key decodes.
func TestLoad_FullDocument(t *testing.T) {
	cfg, err := gbconfig.Load(strings.NewReader(fullConf))
	require.NoError(t, err)

	assert.Equal(t, "grain_a.vasp", cfg.Struct1)
	assert.Equal(t, "grain_b.vasp", cfg.Struct2)
	require.Len(t, cfg.GBSettings, 1)
	assert.Equal(t, geom.Vec3{0, 0, 1}, cfg.GBSettings[0].RotationAxis)
	assert.Equal(t, geom.Vec3{1, 0, 0}, cfg.GBSettings[0].PlaneNormal)
	assert.InDelta(t, math.Pi/6, cfg.GBSettings[0].Angle, 1e-12)

	assert.Equal(t, 0.5, cfg.CoincidentPtsTolerance)
	assert.Equal(t, 10, cfg.CoincidentPtsSearchStep)
	assert.Equal(t, 50, cfg.MaxCoincidentPts)
	assert.Equal(t, [2]float64{0.1, 3.0}, cfg.LatticeVecAglRange)
	assert.Equal(t, [2]int{1000, 2000}, cfg.AtomCountRange)
	assert.Equal(t, 0.05, cfg.BoundaryRadius)
	assert.True(t, cfg.RandomDeleteAtom)
	assert.False(t, cfg.SkipCollisionRemoval)
	assert.Equal(t, "xyz", cfg.OutputFormat)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "gb", cfg.OutputNamePrefix)
	assert.True(t, cfg.OverwriteProtect)
}

// TestLoad_Defaults verifies absent optional keys take documented defaults.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := gbconfig.Load(strings.NewReader(
		`{"struct_1": "a.vasp", "struct_2": "b.vasp"}`))
	require.NoError(t, err)

	assert.Equal(t, 1.0, cfg.CoincidentPtsTolerance)
	assert.Equal(t, 25, cfg.CoincidentPtsSearchStep)
	assert.Equal(t, 100, cfg.MaxCoincidentPts)
	assert.Equal(t, [2]float64{0, math.Pi}, cfg.LatticeVecAglRange)
	assert.Equal(t, [2]int{5000, 10000}, cfg.AtomCountRange)
	assert.Equal(t, 0.025, cfg.BoundaryRadius)
	assert.False(t, cfg.SkipCollisionRemoval)
	assert.False(t, cfg.RandomDeleteAtom)
	assert.Empty(t, cfg.MinAtomDist)
}

// TestLoad_MissingStructs verifies the only hard requirement.
func TestLoad_MissingStructs(t *testing.T) {
	_, err := gbconfig.Load(strings.NewReader(`{"struct_1": "a.vasp"}`))
	assert.ErrorIs(t, err, gbconfig.ErrMissingStruct)

	_, err = gbconfig.Load(strings.NewReader(`{}`))
	assert.ErrorIs(t, err, gbconfig.ErrMissingStruct)
}

// TestLoad_EmptyDistanceListSkipsRemoval verifies an explicitly empty
// min_atom_dist turns collision removal off.
func TestLoad_EmptyDistanceListSkipsRemoval(t *testing.T) {
	cfg, err := gbconfig.Load(strings.NewReader(
		`{"struct_1": "a", "struct_2": "b", "min_atom_dist": []}`))
	require.NoError(t, err)
	assert.True(t, cfg.SkipCollisionRemoval)
}

// TestLoad_BadJSON verifies syntax errors surface as ErrBadConfig.
func TestLoad_BadJSON(t *testing.T) {
	_, err := gbconfig.Load(strings.NewReader(`{"struct_1": `))
	assert.ErrorIs(t, err, gbconfig.ErrBadConfig)

	_, err = gbconfig.Load(strings.NewReader(
		`{"struct_1":"a","struct_2":"b","min_atom_dist":[["Mg","O","far"]]}`))
	assert.ErrorIs(t, err, gbconfig.ErrBadConfig)
}

// TestConfig_Table verifies the threshold table is built symmetric.
func TestConfig_Table(t *testing.T) {
	cfg, err := gbconfig.Load(strings.NewReader(fullConf))
	require.NoError(t, err)

	tbl := cfg.Table()
	d, ok := tbl.Get("O", "Mg")
	assert.True(t, ok)
	assert.Equal(t, 1.8, d)
	assert.Equal(t, 2, tbl.Len())
}

// TestConfig_CollisionOptions verifies the option mapping.
func TestConfig_CollisionOptions(t *testing.T) {
	cfg, err := gbconfig.Load(strings.NewReader(fullConf))
	require.NoError(t, err)

	opts := cfg.CollisionOptions()
	assert.Equal(t, 0.05, opts.BoundaryRadius)
	assert.True(t, opts.RandomDelete)
}
