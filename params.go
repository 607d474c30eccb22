// Package gocmip6 builds the search parameter file that the sproket ESGF
// downloader reads to find CMIP6 daily model output.
package gocmip6

// Fixed parts of every parameter file.
const (
	SearchAPI    = "https://esgf-node.llnl.gov/esg-search/search/"
	TableID      = "day"
	VariantLabel = "r1i1p1f1"
	Project      = "CMIP6"

	// DefaultFilename is the file written in the working directory.
	DefaultFilename = "params.json"
)

// DataNodePriority returns the preferred data nodes, most preferred first.
func DataNodePriority() []string {
	return []string{"aims3.llnl.gov", "esgf-data1.llnl.gov"}
}

// QueryParameters holds the search API, the preferred data nodes and the
// ANDed search criteria. Field order is the order written to disk.
type QueryParameters struct {
	SAPI             string   `json:"search_api"`
	DataNodePriority []string `json:"data_node_priority"`
	Fields           Fields   `json:"fields"`
}

// Fields is the group of ANDed requirements sent to the search API
type Fields struct {
	VariableID   string `json:"variable_id"`
	ExperimentID string `json:"experiment_id"`
	SourceID     string `json:"source_id"`
	TableID      string `json:"table_id"`
	VariantLabel string `json:"variant_label"`
	Project      string `json:"project"`
}

// New returns the parameters for one variable, experiment and source.
// The three values are used as given.
func New(variable, experiment, source string) *QueryParameters {
	return &QueryParameters{
		SAPI:             SearchAPI,
		DataNodePriority: DataNodePriority(),
		Fields: Fields{
			VariableID:   variable,
			ExperimentID: experiment,
			SourceID:     source,
			TableID:      TableID,
			VariantLabel: VariantLabel,
			Project:      Project,
		},
	}
}

// FromArgs builds parameters from positional arguments in the order
// variable, experiment, source. Arguments past the third are ignored.
func FromArgs(args []string) (*QueryParameters, error) {
	if err := CheckArgs(args); err != nil {
		return nil, err
	}
	return New(args[0], args[1], args[2]), nil
}
