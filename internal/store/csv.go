package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"leadgate/internal/model"
)

// Input column labels as they appear in lead exports. The source column
// header is the export tool's literal label, long as it is.
const (
	colName   = "Name"
	colPhone  = "Phone Number"
	colSource = "Buyer/Channel Partner/Enquiry/Site Visit"
)

// Output column order for classified leads. Header row required,
// order-preserving, one row per input row.
var outputColumns = []string{"Lead_ID", "Name", "Phone", "Source_Number", "Assigned_Role"}

// RawLead is one unclassified input row
type RawLead struct {
	Name   string
	Phone  string
	Source string
}

// CSVReader reads raw lead rows from a CSV file
type CSVReader struct {
	path string
}

// NewCSVReader creates a reader for the given input file
func NewCSVReader(path string) *CSVReader {
	return &CSVReader{path: path}
}

// ReadLeads reads all rows in input order. Rows with fewer fields than
// the header are padded rather than rejected; field content problems are
// the processor's concern, not the reader's.
func (r *CSVReader) ReadLeads() ([]RawLead, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // Tolerate ragged rows

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	nameIdx, phoneIdx, sourceIdx := -1, -1, -1
	for i, col := range header {
		switch col {
		case colName:
			nameIdx = i
		case colPhone:
			phoneIdx = i
		case colSource:
			sourceIdx = i
		}
	}
	if nameIdx < 0 || phoneIdx < 0 || sourceIdx < 0 {
		return nil, fmt.Errorf("input file %s: missing required columns (%q, %q, %q)", r.path, colName, colPhone, colSource)
	}

	var leads []RawLead
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		leads = append(leads, RawLead{
			Name:   field(record, nameIdx),
			Phone:  field(record, phoneIdx),
			Source: field(record, sourceIdx),
		})
	}

	return leads, nil
}

// field safely pulls a column from a possibly-short record
func field(record []string, idx int) string {
	if idx < len(record) {
		return record[idx]
	}
	return ""
}

// CSVWriter writes classified leads to a CSV file
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a writer for the given output file
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// WriteLeads writes the header row and one row per lead, preserving
// input order
func (w *CSVWriter) WriteLeads(leads []model.Lead) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	writer := csv.NewWriter(f)

	if err := writer.Write(outputColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, lead := range leads {
		row := []string{lead.ID, lead.Name, lead.Phone, lead.Source, lead.Role}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", lead.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush output file: %w", err)
	}

	return nil
}
