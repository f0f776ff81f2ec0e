// pkg/api/hits_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for consolidated hits.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	SourceID          string   `json:"source_id"` // composite, "_"-joined
	Sources           []string `json:"sources"`   // merge history, oldest first
	ScaffoldID        string   `json:"scaffold_id"`
	ScaffoldLength    int      `json:"scaffold_length"`
	Start             int      `json:"start"`
	End               int      `json:"end"`
	Strand            string   `json:"strand"` // "forward" | "reverse"
	Frame             int      `json:"frame"`
	EValue            string   `json:"e_value"`
	AlignmentLength   int      `json:"alignment_length"`
	QuerySequence     string   `json:"query_sequence,omitempty"`
	ScaffoldAlignment string   `json:"scaffold_alignment,omitempty"`
}
