// Command automesh converts segmented voxel grids into conforming hex
// meshes, smooths them, and writes Abaqus-style .inp files. It mirrors
// the sub-command conversion surface of spec.md §6: convert (spn/npy ->
// inp), smooth (build a mesh from a voxel grid, apply Laplace/Taubin,
// write .inp; an existing .inp mesh is not read), and inspect
// (summarize a mesh). Exit codes follow the automesherr taxonomy; the
// core packages never log, so all structured logging lives here.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/latticeforge/automesh/automesherr"
	"github.com/latticeforge/automesh/classify"
	"github.com/latticeforge/automesh/exchange/inp"
	"github.com/latticeforge/automesh/exchange/npy"
	"github.com/latticeforge/automesh/exchange/spn"
	"github.com/latticeforge/automesh/mesh"
	"github.com/latticeforge/automesh/meshgraph"
	"github.com/latticeforge/automesh/smoothing"
	"github.com/latticeforge/automesh/vec3"
	"github.com/latticeforge/automesh/voxel"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: cannot initialize logger:", err)
		os.Exit(exitIO)
	}
	defer logger.Sync() //nolint:errcheck

	app := &cli.App{
		Name:  "automesh",
		Usage: "convert segmented voxel grids to conforming hex meshes, and smooth them",
		Commands: []*cli.Command{
			convertCommand(),
			smoothCommand(),
			inspectCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("automesh failed", zap.Error(err))
		os.Exit(exitCodeFor(err))
	}
}

// Exit codes, one per automesherr sentinel kind, plus 0 for success.
const (
	exitOK = iota
	exitInputShape
	exitUnknownLabel
	exitEmptyMesh
	exitClassificationMismatch
	exitBadParameter
	exitIO
)

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, automesherr.ErrInputShape), errors.Is(err, automesherr.ErrOutOfRange):
		return exitInputShape
	case errors.Is(err, automesherr.ErrUnknownLabel):
		return exitUnknownLabel
	case errors.Is(err, automesherr.ErrEmptyMesh):
		return exitEmptyMesh
	case errors.Is(err, automesherr.ErrClassificationMismatch):
		return exitClassificationMismatch
	case errors.Is(err, automesherr.ErrBadParameter):
		return exitBadParameter
	case errors.Is(err, automesherr.ErrIO):
		return exitIO
	default:
		return exitIO
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "convert a .spn or .npy voxel grid to an .inp mesh",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Required: true, Usage: "input .spn or .npy path"},
			&cli.StringFlag{Name: "out", Required: true, Usage: "output .inp path"},
			&cli.StringFlag{Name: "shape", Usage: "Nx,Ny,Nz — required for .spn input"},
			&cli.StringFlag{Name: "include", Required: true, Usage: "comma-separated included labels"},
			&cli.StringFlag{Name: "scale", Value: "1,1,1", Usage: "Sx,Sy,Sz"},
			&cli.StringFlag{Name: "translate", Value: "0,0,0", Usage: "Tx,Ty,Tz"},
		},
		Action: func(c *cli.Context) error {
			g, err := loadGrid(c.String("in"), c.String("shape"))
			if err != nil {
				return err
			}
			include, err := parseLabelSet(c.String("include"))
			if err != nil {
				return err
			}
			scale, err := parseVec(c.String("scale"))
			if err != nil {
				return err
			}
			translate, err := parseVec(c.String("translate"))
			if err != nil {
				return err
			}
			m, err := mesh.Build(g, include, mesh.AffineTransform{Scale: scale, Translate: translate})
			if err != nil {
				return err
			}
			return inp.Save(c.String("out"), m)
		},
	}
}

func smoothCommand() *cli.Command {
	return &cli.Command{
		Name:  "smooth",
		Usage: "build a mesh from a .spn or .npy voxel grid, smooth it, and write an .inp file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Required: true, Usage: "input .spn or .npy voxel grid"},
			&cli.StringFlag{Name: "out", Required: true, Usage: "output .inp path"},
			&cli.StringFlag{Name: "shape", Usage: "Nx,Ny,Nz — required for .spn input"},
			&cli.StringFlag{Name: "include", Required: true, Usage: "comma-separated included labels"},
			&cli.StringFlag{Name: "algorithm", Value: "laplace", Usage: "laplace or taubin"},
			&cli.Float64Flag{Name: "lambda", Value: 0.3},
			&cli.Float64Flag{Name: "mu", Value: -0.33},
			&cli.IntFlag{Name: "iterations", Value: 1},
		},
		Action: func(c *cli.Context) error {
			g, err := loadGrid(c.String("in"), c.String("shape"))
			if err != nil {
				return err
			}
			include, err := parseLabelSet(c.String("include"))
			if err != nil {
				return err
			}
			m, err := mesh.Build(g, include, mesh.DefaultTransform())
			if err != nil {
				return err
			}

			classifier, err := classify.Uniform(m.NodeCount(), classify.Interior)
			if err != nil {
				return err
			}
			ng := meshgraph.Build(m.Elements(), m.NodeCount())

			algo := smoothing.Laplace
			if strings.EqualFold(c.String("algorithm"), "taubin") {
				algo = smoothing.Taubin
			}
			params := smoothing.Params{
				Algorithm:  algo,
				Lambda:     c.Float64("lambda"),
				Mu:         c.Float64("mu"),
				Iterations: c.Int("iterations"),
			}
			if err := smoothing.Smooth(m, ng, classifier, params); err != nil {
				return err
			}
			return inp.Save(c.String("out"), m)
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "print node and element counts per block",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Required: true, Usage: "input .spn or .npy voxel grid"},
			&cli.StringFlag{Name: "shape", Usage: "Nx,Ny,Nz — required for .spn input"},
			&cli.StringFlag{Name: "include", Required: true, Usage: "comma-separated included labels"},
		},
		Action: func(c *cli.Context) error {
			g, err := loadGrid(c.String("in"), c.String("shape"))
			if err != nil {
				return err
			}
			include, err := parseLabelSet(c.String("include"))
			if err != nil {
				return err
			}
			m, err := mesh.Build(g, include, mesh.DefaultTransform())
			if err != nil {
				return err
			}
			fmt.Printf("nodes: %d\n", m.NodeCount())
			for _, b := range m.Blocks {
				fmt.Printf("block %d: %d elements\n", b.Label, len(b.Elements))
			}
			return nil
		},
	}
}

func loadGrid(path, shape string) (*voxel.Grid, error) {
	if strings.HasSuffix(path, ".npy") {
		return npy.Load(path)
	}
	if shape == "" {
		return nil, fmt.Errorf("%w: --shape is required for .spn input", automesherr.ErrInputShape)
	}
	nx, ny, nz, err := parseShape(shape)
	if err != nil {
		return nil, err
	}
	return spn.Load(path, nx, ny, nz)
}

func parseShape(s string) (nx, ny, nz int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: --shape must be Nx,Ny,Nz", automesherr.ErrInputShape)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, convErr := strconv.Atoi(strings.TrimSpace(p))
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: bad shape component %q", automesherr.ErrInputShape, p)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}

func parseVec(s string) (vec3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vec3.Vec{}, fmt.Errorf("%w: expected X,Y,Z, got %q", automesherr.ErrBadParameter, s)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vec3.Vec{}, fmt.Errorf("%w: bad vector component %q", automesherr.ErrBadParameter, p)
		}
		vals[i] = v
	}
	return vec3.Vec{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

func parseLabelSet(s string) (map[uint32]bool, error) {
	parts := strings.Split(s, ",")
	set := make(map[uint32]bool, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad label %q", automesherr.ErrInputShape, p)
		}
		set[uint32(v)] = true
	}
	return set, nil
}
