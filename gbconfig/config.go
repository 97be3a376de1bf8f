// Package gbconfig parses grain-boundary build configuration.
package gbconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/lattikit/grainbound/collision"
	"github.com/lattikit/grainbound/geom"
)

// Sentinel errors for configuration loading.
var (
	// ErrMissingStruct indicates struct_1 or struct_2 is absent.
	ErrMissingStruct = errors.New("gbconfig: struct_1 and struct_2 are required")

	// ErrBadConfig indicates malformed JSON or a malformed entry.
	ErrBadConfig = errors.New("gbconfig: invalid configuration")
)

// GBSetting is one grain-boundary orientation: a rotation axis, the boundary
// plane normal, and the rotation angle in radians. Encoded in JSON as
// [[ax,ay,az],[nx,ny,nz],angle].
type GBSetting struct {
	RotationAxis geom.Vec3
	PlaneNormal  geom.Vec3
	Angle        float64
}

// UnmarshalJSON decodes the positional three-element array form.
func (g *GBSetting) UnmarshalJSON(data []byte) error {
	var raw [3]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: gb_settings entry: %v", ErrBadConfig, err)
	}
	if err := json.Unmarshal(raw[0], &g.RotationAxis); err != nil {
		return fmt.Errorf("%w: gb_settings rotation axis: %v", ErrBadConfig, err)
	}
	if err := json.Unmarshal(raw[1], &g.PlaneNormal); err != nil {
		return fmt.Errorf("%w: gb_settings plane normal: %v", ErrBadConfig, err)
	}
	if err := json.Unmarshal(raw[2], &g.Angle); err != nil {
		return fmt.Errorf("%w: gb_settings angle: %v", ErrBadConfig, err)
	}
	return nil
}

// PairDist is one minimum-distance entry, encoded as ["A","B",dist].
type PairDist struct {
	A, B string
	Dist float64
}

// UnmarshalJSON decodes the positional form.
func (p *PairDist) UnmarshalJSON(data []byte) error {
	var raw [3]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: min_atom_dist entry: %v", ErrBadConfig, err)
	}
	if err := json.Unmarshal(raw[0], &p.A); err != nil {
		return fmt.Errorf("%w: min_atom_dist element: %v", ErrBadConfig, err)
	}
	if err := json.Unmarshal(raw[1], &p.B); err != nil {
		return fmt.Errorf("%w: min_atom_dist element: %v", ErrBadConfig, err)
	}
	if err := json.Unmarshal(raw[2], &p.Dist); err != nil {
		return fmt.Errorf("%w: min_atom_dist distance: %v", ErrBadConfig, err)
	}
	return nil
}

// Config is a fully defaulted grain-boundary build configuration.
type Config struct {
	// Required structure file paths.
	Struct1 string
	Struct2 string

	// Grain-boundary orientations to build.
	GBSettings []GBSetting

	// Coincident-point search.
	CoincidentPtsTolerance  float64
	CoincidentPtsSearchStep int
	MaxCoincidentPts        int

	// Lattice vector generation bounds.
	LatticeVecAglRange [2]float64
	AtomCountRange     [2]int

	// Collision removal.
	SkipCollisionRemoval bool
	MinAtomDist          []PairDist
	BoundaryRadius       float64
	RandomDeleteAtom     bool

	// Output.
	OutputFormat     string
	OutputDir        string
	OutputNamePrefix string
	OverwriteProtect bool
}

// rawConfig mirrors the JSON document; pointers distinguish absent keys from
// zero values so defaults only fill true gaps.
type rawConfig struct {
	Struct1                 *string     `json:"struct_1"`
	Struct2                 *string     `json:"struct_2"`
	GBSettings              []GBSetting `json:"gb_settings"`
	CoincidentPtsTolerance  *float64    `json:"coincident_pts_tolerance"`
	CoincidentPtsSearchStep *int        `json:"coincident_pts_search_step"`
	MaxCoincidentPts        *int        `json:"max_coincident_pts_searched"`
	LatticeVecAglRange      *[2]float64 `json:"lattice_vec_agl_range"`
	AtomCountRange          *[2]int     `json:"atom_counts_range"`
	SkipCollisionRemoval    *bool       `json:"skip_collision_removal"`
	MinAtomDist             []PairDist  `json:"min_atom_dist"`
	BoundaryRadius          *float64    `json:"boundary_radius"`
	RandomDeleteAtom        *bool       `json:"random_delete_atom"`
	OutputFormat            *string     `json:"output_format"`
	OutputDir               *string     `json:"output_dir"`
	OutputNamePrefix        *string     `json:"output_name_prefix"`
	OverwriteProtect        *bool       `json:"overwrite_protect"`
}

// Default returns a Config with every optional field at its default.
func Default() Config {
	return Config{
		CoincidentPtsTolerance:  1.0,
		CoincidentPtsSearchStep: 25,
		MaxCoincidentPts:        100,
		LatticeVecAglRange:      [2]float64{0, math.Pi},
		AtomCountRange:          [2]int{5000, 10000},
		BoundaryRadius:          0.025,
	}
}

// Load parses a .gbconf document from r.
func Load(r io.Reader) (*Config, error) {
	var raw rawConfig
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if raw.Struct1 == nil || raw.Struct2 == nil {
		return nil, ErrMissingStruct
	}

	cfg := Default()
	cfg.Struct1 = *raw.Struct1
	cfg.Struct2 = *raw.Struct2
	cfg.GBSettings = raw.GBSettings
	setIf(&cfg.CoincidentPtsTolerance, raw.CoincidentPtsTolerance)
	setIf(&cfg.CoincidentPtsSearchStep, raw.CoincidentPtsSearchStep)
	setIf(&cfg.MaxCoincidentPts, raw.MaxCoincidentPts)
	setIf(&cfg.LatticeVecAglRange, raw.LatticeVecAglRange)
	setIf(&cfg.AtomCountRange, raw.AtomCountRange)
	setIf(&cfg.SkipCollisionRemoval, raw.SkipCollisionRemoval)
	setIf(&cfg.BoundaryRadius, raw.BoundaryRadius)
	setIf(&cfg.RandomDeleteAtom, raw.RandomDeleteAtom)
	setIf(&cfg.OutputFormat, raw.OutputFormat)
	setIf(&cfg.OutputDir, raw.OutputDir)
	setIf(&cfg.OutputNamePrefix, raw.OutputNamePrefix)
	setIf(&cfg.OverwriteProtect, raw.OverwriteProtect)

	cfg.MinAtomDist = raw.MinAtomDist
	// a present-but-empty distance list means "nothing to constrain"
	if raw.MinAtomDist != nil && len(raw.MinAtomDist) == 0 {
		cfg.SkipCollisionRemoval = true
	}
	return &cfg, nil
}

// LoadFile parses the .gbconf file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Table builds the collision threshold table from the distance entries.
func (c *Config) Table() *collision.Table {
	tbl := collision.NewTable()
	for _, p := range c.MinAtomDist {
		tbl.Set(p.A, p.B, p.Dist)
	}
	return tbl
}

// CollisionOptions maps the configuration onto collision removal options.
// The caller injects the rand source when RandomDeleteAtom is set.
func (c *Config) CollisionOptions() collision.Options {
	opts := collision.DefaultOptions()
	opts.BoundaryRadius = c.BoundaryRadius
	opts.RandomDelete = c.RandomDeleteAtom
	return opts
}

// setIf assigns *dst from src when the key was present.
func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
