package process

import (
	"fmt"
	"strings"

	"leadgate/internal/classify"
	"leadgate/internal/model"
	"leadgate/internal/store"
)

// Reader is the narrow boundary to the external row source
type Reader interface {
	ReadLeads() ([]store.RawLead, error)
}

// Writer is the narrow boundary to the external row sink
type Writer interface {
	WriteLeads([]model.Lead) error
}

// Processor classifies raw lead rows one at a time, in order. Bad rows
// never abort a run; their problems are collected in the summary.
type Processor struct {
	classifier *classify.Classifier
}

// NewProcessor creates a processor using the given classifier
func NewProcessor(classifier *classify.Classifier) *Processor {
	return &Processor{classifier: classifier}
}

// Process classifies every row, assigning sequential lead IDs and
// accumulating per-role and per-status counts
func (p *Processor) Process(rows []store.RawLead) ([]model.Lead, model.Summary) {
	leads := make([]model.Lead, 0, len(rows))
	summary := model.NewSummary()

	for i, row := range rows {
		rowNum := i + 1

		name := strings.TrimSpace(row.Name)
		phone := strings.TrimSpace(row.Phone)
		source := strings.TrimSpace(row.Source)

		// Data-quality checks: recorded, never blocking
		if name == "" {
			summary.Problems = append(summary.Problems, fmt.Sprintf("Row %d: name is blank", rowNum))
		}
		if phone == "" {
			summary.Problems = append(summary.Problems, fmt.Sprintf("Row %d: phone number is blank", rowNum))
		} else if !isNumericPhone(phone) {
			summary.Problems = append(summary.Problems, fmt.Sprintf("Row %d: phone '%s' has non-numeric chars", rowNum, phone))
		}

		role, status := p.classifier.Classify(source)

		summary.StatusCounts[status]++
		summary.RoleCounts[role]++

		leads = append(leads, model.Lead{
			ID:     fmt.Sprintf("LEAD-%04d", rowNum),
			Name:   name,
			Phone:  phone,
			Source: source,
			Role:   role,
			Status: status,
		})
	}

	summary.TotalLeads = len(leads)
	return leads, summary
}

// Run reads all rows, classifies them, and writes the enriched records
func (p *Processor) Run(reader Reader, writer Writer) ([]model.Lead, model.Summary, error) {
	rows, err := reader.ReadLeads()
	if err != nil {
		return nil, model.Summary{}, fmt.Errorf("read leads: %w", err)
	}

	leads, summary := p.Process(rows)

	if err := writer.WriteLeads(leads); err != nil {
		return nil, model.Summary{}, fmt.Errorf("write leads: %w", err)
	}

	return leads, summary, nil
}

// isNumericPhone reports whether a phone is digits-only after removing
// the separators that legitimately appear in exports ('-', '+', ' ')
func isNumericPhone(phone string) bool {
	stripped := strings.NewReplacer("-", "", "+", "", " ", "").Replace(phone)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
