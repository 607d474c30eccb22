// Package ncgrid splits CMIP6 NetCDF variables into per-slice and
// per-grid-cell text files that bias-correction tools read in parallel.
package ncgrid

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the default number of files written at once.
const DefaultLimit = 1000

// Grid holds one float32 variable with three dimensions.
type Grid [][][]float32

// Shape returns the length of each dimension.
func (g Grid) Shape() [3]int {
	var s [3]int
	s[0] = len(g)
	if s[0] > 0 {
		s[1] = len(g[0])
		if s[1] > 0 {
			s[2] = len(g[0][0])
		}
	}
	return s
}

// regular reports whether every row of g has the lengths given by Shape.
func (g Grid) regular() bool {
	s := g.Shape()
	for _, rows := range g {
		if len(rows) != s[1] {
			return false
		}
		for _, row := range rows {
			if len(row) != s[2] {
				return false
			}
		}
	}
	return true
}

// ReadVar reads the named variable from a NetCDF file. The variable must be
// float32 with three dimensions.
func ReadVar(path, name string) (Grid, error) {
	nc, err := netcdf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer nc.Close()

	vr, err := nc.GetVariable(name)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: variable %s", path, name)
	}
	values, ok := vr.Values.([][][]float32)
	if !ok {
		return nil, errors.Errorf("%s: variable %s is %T, want [][][]float32", path, name, vr.Values)
	}
	return Grid(values), nil
}

// writeLines creates path and writes one line per call of line(i), i < n.
func writeLines(path string, n int, line func(w *bufio.Writer, i int) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for i := 0; i < n; i++ {
		if err := line(w, i); err != nil {
			f.Close()
			return errors.Wrapf(err, "write %s", path)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}

func newGroup(ctx context.Context, limit int) (*errgroup.Group, context.Context) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	return g, ctx
}

// Split writes every slice g[i] to dir/v<i>.txt, one row of the slice per
// line, at most limit files at a time. It returns the number of files
// written.
func Split(ctx context.Context, g Grid, dir string, limit int) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}
	eg, gctx := newGroup(ctx, limit)
	for i := range g {
		if gctx.Err() != nil {
			break
		}
		slice := g[i]
		path := filepath.Join(dir, fmt.Sprintf("v%d.txt", i))
		eg.Go(func() error {
			return writeLines(path, len(slice), func(w *bufio.Writer, j int) error {
				_, err := fmt.Fprintf(w, "%v\n", slice[j])
				return err
			})
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(g), nil
}
