package gocmip6

import (
	"os"
	"path/filepath"
)

// WriteFile writes the parameters to path, creating the file or truncating
// an existing one. Failures to open, write or close the file are returned
// as a *FileWriteError.
func (p *QueryParameters) WriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	if err := p.Encode(f); err != nil {
		f.Close()
		return &FileWriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	return nil
}

// Run builds parameters from args and writes them to DefaultFilename in dir.
// It returns the path written. Nothing is written if args is too short.
func Run(args []string, dir string) (string, error) {
	p, err := FromArgs(args)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, DefaultFilename)
	if err := p.WriteFile(path); err != nil {
		return "", err
	}
	return path, nil
}
