package process

import (
	"fmt"
	"io"
	"sort"

	"leadgate/internal/model"
)

const bannerLine = "═══════════════════════════════════════════════════════════"

// RenderReport writes a human-readable summary of a classification run
func RenderReport(w io.Writer, leads []model.Lead, summary model.Summary, outputPath string, sampleRows int) {
	if sampleRows <= 0 {
		sampleRows = 10
	}

	fmt.Fprintf(w, "\n%s\n", bannerLine)
	fmt.Fprintf(w, "  Classification Results\n")
	fmt.Fprintf(w, "%s\n\n", bannerLine)

	// Sample of classified leads
	fmt.Fprintf(w, "  First %d classified leads:\n", min(sampleRows, len(leads)))
	fmt.Fprintf(w, "  %-11s %-25s %-17s %s\n", "Lead_ID", "Name", "Source", "Assigned Role")
	for i, lead := range leads {
		if i >= sampleRows {
			break
		}
		fmt.Fprintf(w, "  %-11s %-25s %-17s %s\n", lead.ID, clip(lead.Name, 24), clip(lead.Source, 16), lead.Role)
	}

	// Role distribution
	fmt.Fprintf(w, "\n  Role distribution across %d leads:\n", summary.TotalLeads)
	roles := make([]string, 0, len(summary.RoleCounts))
	for role := range summary.RoleCounts {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		count := summary.RoleCounts[role]
		pct := 0.0
		if summary.TotalLeads > 0 {
			pct = float64(count) / float64(summary.TotalLeads) * 100
		}
		bar := ""
		for i := 0; i < int(pct/2); i++ {
			bar += "#"
		}
		fmt.Fprintf(w, "  %-20s %4d (%5.1f%%)  %s\n", role, count, pct, bar)
	}

	// Match quality
	fmt.Fprintf(w, "\n  Match quality:\n")
	fmt.Fprintf(w, "  Exact matches:       %d\n", summary.StatusCounts[model.StatusMatched])
	fmt.Fprintf(w, "  Missing source:      %d\n", summary.StatusCounts[model.StatusMissing])
	fmt.Fprintf(w, "  Unrecognized source: %d\n", summary.StatusCounts[model.StatusUnrecognized])

	// Data issues
	if len(summary.Problems) > 0 {
		fmt.Fprintf(w, "\n  Data issues found: %d\n", len(summary.Problems))
		for i, p := range summary.Problems {
			if i >= 5 {
				fmt.Fprintf(w, "  ... and %d more\n", len(summary.Problems)-5)
				break
			}
			fmt.Fprintf(w, "  - %s\n", p)
		}
	} else {
		fmt.Fprintf(w, "\n  No data issues found. All rows look clean.\n")
	}

	fmt.Fprintf(w, "\n  Output saved to: %s\n", outputPath)
	fmt.Fprintf(w, "%s\n", bannerLine)
}

// clip caps a string's length so report tables stay aligned
func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
