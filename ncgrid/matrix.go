package ncgrid

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// MatrixVars are the variables of a bias-correction matrix, in column order.
var MatrixVars = []string{"pr", "tasmax", "tasmin"}

// VarName returns the variable stored in a CMIP6 daily file, judged from its
// name. Files that are neither pr_day nor tasmax_day hold tasmin.
func VarName(file string) string {
	base := filepath.Base(file)
	switch {
	case strings.Contains(base, "pr_day"):
		return "pr"
	case strings.Contains(base, "tasmax_day"):
		return "tasmax"
	default:
		return "tasmin"
	}
}

// OutputDir is the directory holding the matrices of one model and experiment.
func OutputDir(model, experiment string) string {
	return model + "_" + experiment
}

// FindInputs returns the files in dir whose names contain
// <model>_<experiment>, in lexical order. Directories are skipped.
func FindInputs(dir, model, experiment string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+model+"_"+experiment+"*"))
	if err != nil {
		return nil, err
	}
	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, m)
		}
	}
	if len(files) < len(MatrixVars) {
		return nil, errors.Errorf("found %d files for %s in %s, need %d", len(files), OutputDir(model, experiment), dir, len(MatrixVars))
	}
	return files, nil
}

// ReadMatrixVars reads the MatrixVars from files, choosing the variable of
// each file with VarName. The grids are returned in MatrixVars order.
func ReadMatrixVars(files []string) ([]Grid, error) {
	byVar := make(map[string]string)
	for _, f := range files {
		name := VarName(f)
		if prev, ok := byVar[name]; ok {
			return nil, errors.Errorf("%s and %s both hold %s", prev, f, name)
		}
		byVar[name] = f
	}
	grids := make([]Grid, len(MatrixVars))
	for i, name := range MatrixVars {
		f, ok := byVar[name]
		if !ok {
			return nil, errors.Errorf("no %s file", name)
		}
		g, err := ReadVar(f, name)
		if err != nil {
			return nil, err
		}
		grids[i] = g
	}
	return grids, nil
}

// Matrix writes one file per grid cell, dir/<i>_<j>.txt, for grids indexed
// [i][j][k]. Line k of a cell file holds the k-th value of every grid,
// separated by ", ". All grids must have the same shape. It returns the
// number of files written.
func Matrix(ctx context.Context, grids []Grid, dir string, limit int) (int, error) {
	if len(grids) == 0 {
		return 0, errors.New("no grids")
	}
	shape := grids[0].Shape()
	for i, g := range grids {
		if !g.regular() {
			return 0, errors.Errorf("grid %d is ragged", i)
		}
		if s := g.Shape(); s != shape {
			return 0, errors.Errorf("grid %d has shape %v, want %v", i, s, shape)
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	eg, gctx := newGroup(ctx, limit)
	n := 0
cells:
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			if gctx.Err() != nil {
				break cells
			}
			path := filepath.Join(dir, fmt.Sprintf("%d_%d.txt", i, j))
			series := make([][]float32, len(grids))
			for c, g := range grids {
				series[c] = g[i][j]
			}
			eg.Go(func() error {
				return writeLines(path, shape[2], func(w *bufio.Writer, k int) error {
					for c, s := range series {
						if c > 0 {
							if _, err := w.WriteString(", "); err != nil {
								return err
							}
						}
						if _, err := fmt.Fprintf(w, "%v", s[k]); err != nil {
							return err
						}
					}
					return w.WriteByte('\n')
				})
			})
			n++
		}
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return n, nil
}
