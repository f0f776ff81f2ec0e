// internal/hit/record.go
package hit

import (
	"fmt"
	"strconv"
	"strings"
)

// NumFields is the field count of one raw hit record.
const NumFields = 10

// Field positions of the raw record.
const (
	FieldSourceID = iota
	FieldScaffoldID
	FieldScaffoldLength
	FieldFirst
	FieldSecond
	FieldEValue
	FieldAlignmentLength
	FieldQuerySequence
	FieldScaffoldAlignment
	FieldFrame
)

// FromFields parses the ordered fields of one raw record:
//
//	source_id scaffold_id scaffold_length first second e_value align_len qseq hseq frame
func FromFields(f []string) (Hit, error) {
	if len(f) != NumFields {
		return Hit{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, NumFields, len(f))
	}
	var (
		r   Raw
		err error
	)
	r.SourceID = strings.TrimSpace(f[FieldSourceID])
	r.ScaffoldID = strings.TrimSpace(f[FieldScaffoldID])
	if r.SourceID == "" || r.ScaffoldID == "" {
		return Hit{}, fmt.Errorf("%w: empty source or scaffold id", ErrMalformedRecord)
	}
	if r.ScaffoldLength, err = atoi(f, FieldScaffoldLength, "scaffold_length"); err != nil {
		return Hit{}, err
	}
	if r.First, err = atoi(f, FieldFirst, "start"); err != nil {
		return Hit{}, err
	}
	if r.Second, err = atoi(f, FieldSecond, "end"); err != nil {
		return Hit{}, err
	}
	if r.AlignmentLength, err = atoi(f, FieldAlignmentLength, "alignment_length"); err != nil {
		return Hit{}, err
	}
	if r.Frame, err = atoi(f, FieldFrame, "frame"); err != nil {
		return Hit{}, err
	}
	r.EValue = strings.TrimSpace(f[FieldEValue])
	r.QuerySequence = strings.TrimSpace(f[FieldQuerySequence])
	r.ScaffoldAlignment = strings.TrimSpace(f[FieldScaffoldAlignment])
	return New(r), nil
}

func atoi(f []string, idx int, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(f[idx]))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedRecord, name, f[idx])
	}
	return v, nil
}

// Fields renders h back into the raw record layout. Coordinates are written
// in reported order and the source id is the composite merge history.
func (h Hit) Fields() []string {
	first, second := h.Oriented()
	return []string{
		h.SourceID(),
		h.ScaffoldID,
		strconv.Itoa(h.ScaffoldLength),
		strconv.Itoa(first),
		strconv.Itoa(second),
		h.EValue,
		strconv.Itoa(h.AlignmentLength),
		h.QuerySequence,
		h.ScaffoldAlignment,
		strconv.Itoa(h.Frame),
	}
}
