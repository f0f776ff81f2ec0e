// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"ervin/internal/hit"
	"ervin/pkg/api"
)

// ToAPIHit converts a domain Hit to the stable wire schema (v1).
func ToAPIHit(h hit.Hit) api.HitV1 {
	return api.HitV1{
		SourceID:          h.SourceID(),
		Sources:           append([]string(nil), h.SourceIDs...),
		ScaffoldID:        h.ScaffoldID,
		ScaffoldLength:    h.ScaffoldLength,
		Start:             h.Start,
		End:               h.End,
		Strand:            h.Direction.String(),
		Frame:             h.Frame,
		EValue:            h.EValue,
		AlignmentLength:   h.AlignmentLength,
		QuerySequence:     h.QuerySequence,
		ScaffoldAlignment: h.ScaffoldAlignment,
	}
}

func toAPIHits(list []hit.Hit) []api.HitV1 {
	out := make([]api.HitV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPIHit(h))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 hits (pretty-indented).
func WriteJSON(w io.Writer, list []hit.Hit) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPIHits(list))
}
