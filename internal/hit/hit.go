// internal/hit/hit.go
package hit

import (
	"fmt"
	"strings"
)

// Direction is the strand orientation of a hit relative to the scaffold.
type Direction uint8

const (
	Forward Direction = iota
	Reverse
)

// Marker is the single-letter strand code used in FASTA titles ("P" / "N").
func (d Direction) Marker() string {
	if d == Reverse {
		return "N"
	}
	return "P"
}

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Raw is one alignment record as reported by the aligner, before normalization.
// First and Second are the hit coordinates in the order they were reported.
type Raw struct {
	SourceID          string
	ScaffoldID        string
	ScaffoldLength    int
	First, Second     int
	EValue            string
	AlignmentLength   int
	QuerySequence     string
	ScaffoldAlignment string
	Frame             int
}

// Hit is an immutable alignment hit on one scaffold. Start <= End always holds;
// the reported orientation is kept in Direction.
type Hit struct {
	SourceIDs         []string // merge history, oldest first
	ScaffoldID        string
	ScaffoldLength    int
	Start             int
	End               int
	Direction         Direction
	Frame             int
	EValue            string
	AlignmentLength   int
	QuerySequence     string
	ScaffoldAlignment string
}

// New normalizes a raw record into a Hit.
func New(r Raw) Hit {
	h := Hit{
		SourceIDs:         []string{r.SourceID},
		ScaffoldID:        r.ScaffoldID,
		ScaffoldLength:    r.ScaffoldLength,
		Frame:             r.Frame,
		EValue:            r.EValue,
		AlignmentLength:   r.AlignmentLength,
		QuerySequence:     r.QuerySequence,
		ScaffoldAlignment: r.ScaffoldAlignment,
	}
	if r.First < r.Second {
		h.Start, h.End, h.Direction = r.First, r.Second, Forward
	} else {
		h.Start, h.End, h.Direction = r.Second, r.First, Reverse
	}
	return h
}

// SourceID renders the merge history as the composite "a_b_c" identifier.
func (h Hit) SourceID() string { return strings.Join(h.SourceIDs, "_") }

// Span is End - Start.
func (h Hit) Span() int { return h.End - h.Start }

// Oriented returns the coordinates in reported order: (Start, End) for forward
// hits and (End, Start) for reverse hits.
func (h Hit) Oriented() (int, int) {
	if h.Direction == Reverse {
		return h.End, h.Start
	}
	return h.Start, h.End
}

// Equal reports structural equality over every field.
func (h Hit) Equal(o Hit) bool { return h.Key() == o.Key() }

// Key is a comparable projection of every Hit field, usable as a map key.
type Key struct {
	Sources           string
	ScaffoldID        string
	ScaffoldLength    int
	Start, End        int
	Direction         Direction
	Frame             int
	EValue            string
	AlignmentLength   int
	QuerySequence     string
	ScaffoldAlignment string
}

// Key returns the structural identity of h. SourceIDs are joined with NUL so
// that ["a_b"] and ["a", "b"] stay distinct.
func (h Hit) Key() Key {
	return Key{
		Sources:           strings.Join(h.SourceIDs, "\x00"),
		ScaffoldID:        h.ScaffoldID,
		ScaffoldLength:    h.ScaffoldLength,
		Start:             h.Start,
		End:               h.End,
		Direction:         h.Direction,
		Frame:             h.Frame,
		EValue:            h.EValue,
		AlignmentLength:   h.AlignmentLength,
		QuerySequence:     h.QuerySequence,
		ScaffoldAlignment: h.ScaffoldAlignment,
	}
}

func (h Hit) String() string {
	return fmt.Sprintf("%s %s:%d-%d %s frame=%d", h.SourceID(), h.ScaffoldID, h.Start, h.End, h.Direction.Marker(), h.Frame)
}
