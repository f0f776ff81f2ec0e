// internal/output/rows.go
package output

import (
	"strings"

	"ervin/internal/hit"
)

// FormatRowTSV returns the ten TSV columns for h (no trailing newline).
// Coordinates are written in reported orientation.
func FormatRowTSV(h hit.Hit) string {
	return strings.Join(h.Fields(), "\t")
}

// FASTATitle is the header line body for h: scaffold, start, end and strand
// marker, coordinates in reported orientation.
func FASTATitle(h hit.Hit) string {
	first, second := h.Oriented()
	var b strings.Builder
	b.WriteString(h.ScaffoldID)
	b.WriteByte(' ')
	b.WriteString(itoa(first))
	b.WriteByte(' ')
	b.WriteString(itoa(second))
	b.WriteByte(' ')
	b.WriteString(h.Direction.Marker())
	return b.String()
}
