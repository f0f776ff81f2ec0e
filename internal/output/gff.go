// internal/output/gff.go
package output

import (
	"io"
	"strconv"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"ervin/internal/hit"
)

// GFFSource and GFFFeature fill the source and feature columns.
const (
	GFFSource  = "ervin"
	GFFFeature = "hit"
)

// ToGFF converts h to a GFF feature. The e-value becomes the score when it
// parses as a number.
func ToGFF(h hit.Hit) *gff.Feature {
	f := &gff.Feature{
		SeqName:   h.ScaffoldID,
		Source:    GFFSource,
		Feature:   GFFFeature,
		FeatStart: max(h.Start-1, 0),
		FeatEnd:   h.End,
		FeatFrame: gff.NoFrame,
		FeatAttributes: gff.Attributes{
			{Tag: "ID", Value: h.SourceID()},
			{Tag: "Sources", Value: strconv.Itoa(len(h.SourceIDs))},
			{Tag: "EValue", Value: h.EValue},
			{Tag: "Frame", Value: strconv.Itoa(h.Frame)},
		},
	}
	if h.Direction == hit.Reverse {
		f.FeatStrand = seq.Minus
	} else {
		f.FeatStrand = seq.Plus
	}
	if s, err := strconv.ParseFloat(h.EValue, 64); err == nil {
		f.FeatScore = &s
	}
	return f
}

// WriteGFF writes one feature line per hit, preceded by the version header.
func WriteGFF(w io.Writer, list []hit.Hit) error {
	gw := gff.NewWriter(w, 60, true)
	for _, h := range list {
		if _, err := gw.Write(ToGFF(h)); err != nil {
			return err
		}
	}
	return nil
}
