// Command grainbound builds a grain-boundary structure from a .gbconf run
// configuration: it reads two pre-oriented VASP structures sharing a lattice,
// optionally grows each into a supercell, joins them along the c axis, prunes
// boundary collisions, and writes the result.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lattikit/grainbound/collision"
	"github.com/lattikit/grainbound/crystal"
	"github.com/lattikit/grainbound/gbconfig"
	"github.com/lattikit/grainbound/supercell"
	"github.com/lattikit/grainbound/vaspio"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "grainbound:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		growScale int
		seed      int64
		occ       float64
		wobble    float64
	)
	cmd := &cobra.Command{
		Use:   "grainbound <config.gbconf>",
		Short: "Build a collision-free grain-boundary structure",
		Long: "grainbound reads a JSON .gbconf configuration naming two pre-oriented\n" +
			"VASP structures with a common lattice, grows each into a supercell,\n" +
			"joins them along the third lattice vector, removes atoms that collide\n" +
			"at the interface, faces, and corners, and writes the result.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], growScale, seed, occ, wobble, cmd)
		},
		SilenceUsage: true,
	}
	cmd.Flags().IntVar(&growScale, "grow-scale", 1,
		"grow each grain to an N-times supercell before joining")
	cmd.Flags().Int64Var(&seed, "seed", 1,
		"shuffle seed when random_delete_atom is enabled")
	cmd.Flags().Float64Var(&occ, "occ", 1.0, "EMS occupancy constant")
	cmd.Flags().Float64Var(&wobble, "wobble", 0.05, "EMS wobble constant")
	return cmd
}

func run(confPath string, growScale int, seed int64, occ, wobble float64, cmd *cobra.Command) error {
	cfg, err := gbconfig.LoadFile(confPath)
	if err != nil {
		return err
	}

	a, err := readStructure(cfg.Struct1)
	if err != nil {
		return err
	}
	b, err := readStructure(cfg.Struct2)
	if err != nil {
		return err
	}

	if growScale > 1 {
		maxAtoms := cfg.AtomCountRange[1]
		for _, st := range []*crystal.Structure{a, b} {
			target := st.Lattice().Scale(float64(growScale))
			res, err := supercell.Grow(st, target, supercell.GrowOptions{MaxAtoms: maxAtoms})
			if err != nil {
				return err
			}
			cmd.Printf("grew %s to %d atoms over %d shells\n", st.Comment(), res.Atoms, res.Shells)
		}
	}

	combined, err := crystal.Combine(a, b)
	if err != nil {
		return err
	}

	if !cfg.SkipCollisionRemoval {
		opts := cfg.CollisionOptions()
		if opts.RandomDelete {
			opts.Rand = rand.New(rand.NewSource(seed))
		}
		res, err := collision.Remove(combined, cfg.Table(), opts)
		if err != nil {
			return err
		}
		cmd.Printf("removed %d atoms on interface\n", res.Interface)
		for axis, n := range res.Faces {
			cmd.Printf("removed %d atoms on face pair along axis %d\n", n, axis)
		}
		cmd.Printf("removed %d atoms at corners\n", res.Corners)
		cmd.Printf("removed %d atoms in total\n", res.Total)
	}

	return writeStructure(cfg, combined, occ, wobble, cmd)
}

func readStructure(path string) (*crystal.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return vaspio.ReadVASP(f, vaspio.DefaultReadOptions())
}

func writeStructure(cfg *gbconfig.Config, st *crystal.Structure, occ, wobble float64, cmd *cobra.Command) error {
	format := cfg.OutputFormat
	if format == "" {
		format = "vasp"
	}
	name := cfg.OutputNamePrefix + st.Comment() + "." + format
	path := filepath.Join(cfg.OutputDir, name)

	if cfg.OverwriteProtect {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("output %s already exists (overwrite_protect)", path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "vasp":
		err = vaspio.WriteVASP(f, st)
	case "xyz":
		err = vaspio.WriteXYZ(f, st)
	case "ems":
		err = vaspio.WriteEMS(f, st, occ, wobble)
	default:
		err = errors.New("unsupported output format " + format)
	}
	if err != nil {
		return err
	}
	cmd.Printf("wrote %s (%d atoms)\n", path, st.NumAtoms())
	return nil
}
