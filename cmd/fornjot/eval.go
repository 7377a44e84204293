package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/Bandsberg/fornjot"
	"github.com/Bandsberg/fornjot/internal/model"
	"github.com/Bandsberg/fornjot/isosurface/grid"
	"github.com/Bandsberg/fornjot/kernel"
	"github.com/Bandsberg/fornjot/render"
	"github.com/charmbracelet/log"
	"github.com/soypat/glgl/math/ms3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// report is the outcome of evaluating one model file.
type report struct {
	path      string
	triangles int
	vertices  int
	bounds    r3.Box
	volume    float64
	cells     [3]int // zero unless a grid resolution was requested
}

func newEvalCmd(logger *log.Logger, flags *rootFlags) *cobra.Command {
	var resolution float64
	cmd := &cobra.Command{
		Use:   "eval MODEL.toml...",
		Short: "Triangulate models and report mesh statistics",
		Long: `Triangulates each model and prints its triangle count, welded vertex
count, bounding volume and enclosed volume. Models are evaluated
concurrently and reported in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]report, len(args))
			var g errgroup.Group
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, path := range args {
				g.Go(func() (err error) {
					reports[i], err = evalModel(logger, path, flags.tolerance, resolution)
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, r := range reports {
				if len(reports) > 1 {
					fmt.Fprintf(w, "# %s\n", r.path)
				}
				r.write(w)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&resolution, "resolution", 0, "if positive, report the isosurface grid covering the model at this resolution")
	return cmd
}

func evalModel(logger *log.Logger, path string, flagTol, resolution float64) (report, error) {
	shape, tol, err := loadModel(logger, path, flagTol)
	if err != nil {
		return report{}, err
	}
	start := time.Now()
	res, err := kernel.Evaluate(shape, tol)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("evaluated model", "path", path, "triangles", len(res.Triangles), "elapsed", time.Since(start))
	mesh := render.Weld(res.Triangles, tol/1000)
	if open := mesh.OpenEdges(); open > 0 {
		logger.Warn("mesh is not closed", "path", path, "open_edges", open)
	}
	r := report{
		path:      path,
		triangles: len(res.Triangles),
		vertices:  len(mesh.Vertices),
		bounds:    res.Bounds,
		volume:    mesh.Volume(),
	}
	if resolution > 0 {
		d, err := grid.NewDescriptor(toBox(res.Bounds), float32(resolution))
		if err != nil {
			return report{}, fmt.Errorf("%s: %w", path, err)
		}
		r.cells = d.CellCount()
	}
	return r, nil
}

func (r report) write(w io.Writer) {
	fmt.Fprintf(w, "triangles: %d\n", r.triangles)
	fmt.Fprintf(w, "vertices:  %d\n", r.vertices)
	fmt.Fprintf(w, "bounds:    %v %v\n", r.bounds.Min, r.bounds.Max)
	fmt.Fprintf(w, "volume:    %.6g\n", r.volume)
	if r.cells != [3]int{} {
		fmt.Fprintf(w, "grid:      %v cells\n", r.cells)
	}
}

// loadModel reads the shape tree at path. A non-zero flag tolerance takes
// precedence over the one in the file.
func loadModel(logger *log.Logger, path string, flagTol float64) (fornjot.Shape, float64, error) {
	f, err := model.Load(path)
	if err != nil {
		return nil, 0, err
	}
	shape, err := f.Build()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	tol := f.Tolerance
	if flagTol != 0 {
		tol = flagTol
	}
	if err := kernel.CheckTolerance(tol); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("loaded model", "path", path, "name", f.Name, "tolerance", tol)
	return shape, tol, nil
}

func toBox(b r3.Box) ms3.Box {
	return ms3.Box{
		Min: ms3.Vec{X: float32(b.Min.X), Y: float32(b.Min.Y), Z: float32(b.Min.Z)},
		Max: ms3.Vec{X: float32(b.Max.X), Y: float32(b.Max.Y), Z: float32(b.Max.Z)},
	}
}
