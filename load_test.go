package gocmip6

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, err := Run([]string{`ta"s`, "ssp585", "CESM2"}, dir)
	if err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := New(`ta"s`, "ssp585", "CESM2"); !reflect.DeepEqual(p, want) {
		t.Errorf("have %+v, want %+v", p, want)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	again, err := p.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(written, again) {
		t.Errorf("re-encoded\n%s\nwritten\n%s", again, written)
	}
}

func TestLoadSproketConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sproket.json")
	conf := `{
	"search_api": "https://esgf-node.llnl.gov/esg-search/search/",
	"data_node_priority": ["aims3.llnl.gov"],
	"fields": {
		"project": "CMIP6",
		"variable_id": "pr",
		"experiment_id": "historical",
		"source_id": "GFDL-CM4",
		"table_id": "day",
		"variant_label": "r1i1p1f1"
	}
}`
	if err := os.WriteFile(path, []byte(conf), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := New("pr", "historical", "GFDL-CM4")
	want.DataNodePriority = []string{"aims3.llnl.gov"}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("have %+v, want %+v", p, want)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		contents string
		reason   string
	}{
		{name: "missing", reason: "could not be read"},
		{name: "garbage", contents: `{"search_api": `, reason: "does not contain valid JSON"},
		{name: "fields array", contents: `{"search_api": "x", "fields": []}`, reason: "is not a parameter file"},
		{name: "no api", contents: `{"fields": {"variable_id": "tas"}}`, reason: "is missing search_api"},
	}
	for _, test := range tests {
		path := filepath.Join(dir, test.name+".json")
		if test.contents != "" {
			if err := os.WriteFile(path, []byte(test.contents), 0644); err != nil {
				t.Fatal(err)
			}
		}
		_, err := Load(path)
		var invalid *InvalidParamsError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: have error %v, want *InvalidParamsError", test.name, err)
			continue
		}
		if invalid.Reason != test.reason {
			t.Errorf("%s: reason %q, want %q", test.name, invalid.Reason, test.reason)
		}
	}
}
