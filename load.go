package gocmip6

import (
	"encoding/json"
	"os"
)

// Load reads a parameter file written by WriteFile or by hand. The file must
// hold valid JSON with a search_api.
func Load(path string) (*QueryParameters, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, &InvalidParamsError{Path: path, Reason: "could not be read", Err: err}
	}

	if !json.Valid(fileBytes) {
		return nil, &InvalidParamsError{Path: path, Reason: "does not contain valid JSON"}
	}

	var p QueryParameters
	if err := json.Unmarshal(fileBytes, &p); err != nil {
		return nil, &InvalidParamsError{Path: path, Reason: "is not a parameter file", Err: err}
	}
	if p.SAPI == "" {
		return nil, &InvalidParamsError{Path: path, Reason: "is missing search_api"}
	}
	return &p, nil
}
