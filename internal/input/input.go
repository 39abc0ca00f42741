// Package input reads tabular data for the render command. Every
// reader produces the same Document shape regardless of the source
// format, so the command layer can hand it straight to the table
// package.
package input

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	yaml "gopkg.in/yaml.v2"
)

// Format identifies a supported input encoding.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
)

// String returns the name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a format name from the command line to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf(`invalid input format %#v (must be "csv", "json", "yaml", or "toml")`, name)
	}
}

// DetectFormat guesses the format of a file from its extension,
// defaulting to CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatCSV
	}
}

// Document is the format-independent result of reading a source:
// rows of cell values plus the column labels, when the source format
// carries them (CSV never does; the others may).
type Document struct {
	Labels []string
	Rows   [][]any
}

// Read decodes r according to format.
func Read(r io.Reader, format Format) (*Document, error) {
	switch format {
	case FormatCSV:
		return readCSV(r)
	case FormatJSON:
		return readJSON(r)
	case FormatYAML:
		return readYAML(r)
	case FormatTOML:
		return readTOML(r)
	default:
		return nil, fmt.Errorf("unsupported input format %v", format)
	}
}

func readCSV(r io.Reader) (*Document, error) {
	reader := csv.NewReader(r)
	// Ragged records are diagnosed by the table itself, with a better
	// error than encoding/csv's.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	doc := &Document{Rows: make([][]any, len(records))}
	for i, record := range records {
		row := make([]any, len(record))
		for j, field := range record {
			row[j] = field
		}
		doc.Rows[i] = row
	}
	return doc, nil
}

// jsonDocument and its yaml/toml twins accept the explicit document
// shape {labels: [...], rows: [[...], ...]}.
type jsonDocument struct {
	Labels []string `json:"labels"`
	Rows   [][]any  `json:"rows"`
}

func readJSON(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	// A bare array of arrays is rows without labels.
	var rows [][]any
	if err := json.Unmarshal(data, &rows); err == nil {
		return &Document{Rows: rows}, nil
	}

	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}
	return &Document{Labels: doc.Labels, Rows: doc.Rows}, nil
}

type yamlDocument struct {
	Labels []string `yaml:"labels"`
	Rows   [][]any  `yaml:"rows"`
}

func readYAML(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading yaml: %w", err)
	}

	var rows [][]any
	if err := yaml.Unmarshal(data, &rows); err == nil {
		return &Document{Rows: rows}, nil
	}

	var doc yamlDocument
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("reading yaml: %w", err)
	}
	return &Document{Labels: doc.Labels, Rows: doc.Rows}, nil
}

type tomlDocument struct {
	Labels []string `toml:"labels"`
	Rows   [][]any  `toml:"rows"`
}

func readTOML(r io.Reader) (*Document, error) {
	var doc tomlDocument
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("reading toml: %w", err)
	}
	return &Document{Labels: doc.Labels, Rows: doc.Rows}, nil
}
