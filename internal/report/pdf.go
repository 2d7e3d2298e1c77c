// Package report renders an optional human-readable summary of a built role
// schema for review alongside the JSON artifacts.
package report

import (
	"fmt"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/jamfrolesync/internal/schema"
)

// WritePDF renders a privilege catalog summary: generation metadata,
// per-source endpoint counts, and each category with its resources.
func WritePDF(s *schema.RoleSchema, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Jamf privilege catalog", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s (schema %s)", s.LastUpdated, s.Version), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Classic API endpoints: %d", len(s.ClassicAPI.Endpoints)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Jamf Pro API endpoints: %d", len(s.JamfProAPI.Endpoints)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Distinct privileges: %d", len(s.AllPrivileges)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	actions := make([]string, 0, len(s.PrivilegeCategories))
	for action := range s.PrivilegeCategories {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, action, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, resource := range s.PrivilegeCategories[action] {
			pdf.MultiCell(0, 5, "- "+resource, "", "L", false)
		}
		pdf.Ln(2)
	}

	return pdf.OutputFileAndClose(outPath)
}
