package ncgrid

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/batchatco/go-native-netcdf/netcdf/util"
)

// writeNC writes g as a float32 variable with dimensions time, lat, lon.
func writeNC(t *testing.T, path, name string, g Grid) {
	t.Helper()
	w, err := netcdf.OpenWriter(path, netcdf.KindCDF)
	if err != nil {
		t.Fatal(err)
	}
	attrs, err := util.NewOrderedMap([]string{"units"}, map[string]any{"units": "K"})
	if err != nil {
		t.Fatal(err)
	}
	err = w.AddVar(name, api.Variable{
		Values:     [][][]float32(g),
		Dimensions: []string{"time", "lat", "lon"},
		Attributes: attrs,
	})
	if err != nil {
		w.Close()
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

// testGrid returns a 2x3x4 grid whose values encode their indices plus offset.
func testGrid(offset float32) Grid {
	g := make(Grid, 2)
	for i := range g {
		g[i] = make([][]float32, 3)
		for j := range g[i] {
			g[i][j] = make([]float32, 4)
			for k := range g[i][j] {
				g[i][j][k] = offset + float32(100*i+10*j+k)
			}
		}
	}
	return g
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestReadVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tas_day_CESM2_ssp585.nc")
	want := testGrid(0.5)
	writeNC(t, path, "tas", want)

	have, err := ReadVar(path, "tas")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(have, want) {
		t.Errorf("have %v, want %v", have, want)
	}
	if s := have.Shape(); s != [3]int{2, 3, 4} {
		t.Errorf("shape %v", s)
	}
}

func TestReadVarErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tas.nc")
	writeNC(t, path, "tas", testGrid(0))

	notNC := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notNC, []byte("not netcdf"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		v    string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.nc"), v: "tas"},
		{name: "not netcdf", path: notNC, v: "tas"},
		{name: "missing variable", path: path, v: "pr"},
	}
	for _, test := range tests {
		if _, err := ReadVar(test.path, test.v); err == nil {
			t.Errorf("%s: no error", test.name)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
	}{
		{name: "default limit", limit: 0},
		{name: "one at a time", limit: 1},
		{name: "two at a time", limit: 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "dataFiles")
			n, err := Split(context.Background(), testGrid(0), dir, test.limit)
			if err != nil {
				t.Fatal(err)
			}
			if n != 2 {
				t.Errorf("wrote %d files, want 2", n)
			}
			if have, want := readFile(t, filepath.Join(dir, "v0.txt")), "[0 1 2 3]\n[10 11 12 13]\n[20 21 22 23]\n"; have != want {
				t.Errorf("v0.txt: have %q, want %q", have, want)
			}
			if have, want := readFile(t, filepath.Join(dir, "v1.txt")), "[100 101 102 103]\n[110 111 112 113]\n[120 121 122 123]\n"; have != want {
				t.Errorf("v1.txt: have %q, want %q", have, want)
			}
		})
	}
}

func TestSplitUnwritable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Split(context.Background(), testGrid(0), filepath.Join(file, "out"), 0); err == nil {
		t.Error("no error writing under a file")
	}
}

func TestSplitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Split(ctx, testGrid(0), t.TempDir(), 1); err != context.Canceled {
		t.Errorf("have error %v, want context.Canceled", err)
	}
}
