package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const defaultDirMode = 0o750

// ErrEngineUnavailable reports that the rasterization engine cannot be
// located. It is fatal to the whole run.
var ErrEngineUnavailable = errors.New("rasterization engine unavailable")

// DocumentError reports a single document that could not be rasterized.
// The session skips the document and continues.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// Document is one input PDF.
type Document struct {
	Path string
	Name string // file name including extension
}

// OutputName returns the PNG file name written for d.
func (d Document) OutputName() string {
	return strings.TrimSuffix(d.Name, filepath.Ext(d.Name)) + ".png"
}

// Discover lists the PDF files directly inside dir, sorted by name.
// Matching on the extension is case-insensitive; subdirectories are ignored.
func Discover(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read directory %s: %w", dir, err)
	}
	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		docs = append(docs, Document{Path: filepath.Join(dir, entry.Name()), Name: entry.Name()})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// PrepareDirs creates the output directory and, if missing, the input
// directory. inputCreated is true when the input directory did not exist,
// in which case there is nothing to process yet.
func PrepareDirs(inputDir, outputDir string) (inputCreated bool, err error) {
	if err := os.MkdirAll(outputDir, defaultDirMode); err != nil {
		return false, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}
	if _, statErr := os.Stat(inputDir); statErr == nil {
		return false, nil
	} else if !os.IsNotExist(statErr) {
		return false, fmt.Errorf("failed to stat input directory %s: %w", inputDir, statErr)
	}
	if err := os.MkdirAll(inputDir, defaultDirMode); err != nil {
		return false, fmt.Errorf("failed to create input directory %s: %w", inputDir, err)
	}
	return true, nil
}
