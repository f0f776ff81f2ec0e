package hit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mk(id string, start, end int, aln string) Hit {
	return New(Raw{
		SourceID:          id,
		ScaffoldID:        "S1",
		ScaffoldLength:    5000,
		First:             start,
		Second:            end,
		EValue:            "1e-20",
		AlignmentLength:   end - start,
		QuerySequence:     "QSEQ",
		ScaffoldAlignment: aln,
		Frame:             1,
	})
}

func TestNewNormalizesReverseCoordinates(t *testing.T) {
	h := New(Raw{SourceID: "p", ScaffoldID: "S1", First: 300, Second: 100, Frame: -2})
	assert.Equal(t, 100, h.Start)
	assert.Equal(t, 300, h.End)
	assert.Equal(t, Reverse, h.Direction)
	assert.Equal(t, "N", h.Direction.Marker())

	first, second := h.Oriented()
	assert.Equal(t, 300, first)
	assert.Equal(t, 100, second)
}

func TestNewEqualCoordinatesAreReverse(t *testing.T) {
	h := New(Raw{SourceID: "p", ScaffoldID: "S1", First: 42, Second: 42})
	assert.Equal(t, Reverse, h.Direction)
	assert.Equal(t, 42, h.Start)
	assert.Equal(t, 42, h.End)
}

func TestFromFields(t *testing.T) {
	line := "probe1\tscaf_7\t12000\t900\t600\t3.2e-15\t98\tMKV\tMK-V\t-1"
	h, err := FromFields(strings.Split(line, "\t"))
	require.NoError(t, err)

	assert.Equal(t, []string{"probe1"}, h.SourceIDs)
	assert.Equal(t, "scaf_7", h.ScaffoldID)
	assert.Equal(t, 12000, h.ScaffoldLength)
	assert.Equal(t, 600, h.Start)
	assert.Equal(t, 900, h.End)
	assert.Equal(t, Reverse, h.Direction)
	assert.Equal(t, "3.2e-15", h.EValue)
	assert.Equal(t, 98, h.AlignmentLength)
	assert.Equal(t, "MK-V", h.ScaffoldAlignment)
	assert.Equal(t, -1, h.Frame)

	assert.Equal(t, strings.Split(line, "\t"), h.Fields())
}

func TestFromFieldsMalformed(t *testing.T) {
	cases := map[string][]string{
		"too few":     {"a", "b", "1"},
		"too many":    strings.Split("a\tS\t1\t2\t3\te\t4\tq\th\t1\textra", "\t"),
		"bad start":   strings.Split("a\tS\t1\tx\t3\te\t4\tq\th\t1", "\t"),
		"bad frame":   strings.Split("a\tS\t1\t2\t3\te\t4\tq\th\tone", "\t"),
		"empty id":    strings.Split("\tS\t1\t2\t3\te\t4\tq\th\t1", "\t"),
		"bad align":   strings.Split("a\tS\t1\t2\t3\te\t4.5\tq\th\t1", "\t"),
		"bad scaflen": strings.Split("a\tS\t?\t2\t3\te\t4\tq\th\t1", "\t"),
	}
	for name, fields := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromFields(fields)
			require.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestEqualIsStructural(t *testing.T) {
	a := mk("A", 100, 200, "MKVLA")
	b := mk("A", 100, 200, "MKVLA")
	assert.True(t, a.Equal(b))

	b.EValue = "0.1"
	assert.False(t, a.Equal(b))

	c := a
	c.SourceIDs = []string{"A_B"}
	d := a
	d.SourceIDs = []string{"A", "B"}
	assert.Equal(t, c.SourceID(), d.SourceID())
	assert.False(t, c.Equal(d))
}

func TestClassify(t *testing.T) {
	a := mk("A", 100, 200, "MKVLA")

	tests := []struct {
		name string
		m, c Hit
		want Relation
	}{
		{"contained in comparator", mk("C", 120, 180, "X"), a, Superset},
		{"identical ranges", mk("D", 100, 200, "X"), a, Superset},
		{"gap of ten after", a, mk("B", 210, 300, "Y"), NearNeighbour},
		{"gap of ten before", mk("B", 210, 300, "Y"), a, NearNeighbour},
		{"gap at tolerance", a, mk("B", 250, 300, "Y"), NearNeighbour},
		{"gap past tolerance", a, mk("B", 251, 300, "Y"), Unrelated},
		{"abutting", a, mk("B", 200, 300, "Y"), RangeExtension},
		{"overlap extends right", a, mk("B", 150, 260, "Y"), RangeExtension},
		{"overlap extends left", a, mk("B", 50, 150, "Y"), RangeExtension},
		{"candidate contains comparator", a, mk("B", 150, 160, "Y"), Unrelated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.m, tt.c, DefaultNeighbourGap))
		})
	}
}

func TestClassifyRequiresSameFrameAndStrand(t *testing.T) {
	a := mk("A", 100, 200, "MKVLA")

	otherFrame := a
	otherFrame.SourceIDs = []string{"F"}
	otherFrame.Frame = 2
	assert.Equal(t, Unrelated, Classify(a, otherFrame, DefaultNeighbourGap))
	assert.Equal(t, Unrelated, Classify(otherFrame, a, DefaultNeighbourGap))

	otherStrand := mk("R", 200, 100, "MKVLA")
	assert.Equal(t, Unrelated, Classify(a, otherStrand, DefaultNeighbourGap))
	assert.Equal(t, Unrelated, Classify(mk("N", 210, 300, "Y"), New(Raw{SourceID: "R", ScaffoldID: "S1", First: 200, Second: 100, Frame: 1}), DefaultNeighbourGap))

	otherScaffold := a
	otherScaffold.ScaffoldID = "S2"
	assert.Equal(t, Unrelated, Classify(a, otherScaffold, DefaultNeighbourGap))
}

func TestNearNeighbourCustomGap(t *testing.T) {
	a := mk("A", 100, 200, "MKVLA")
	b := mk("B", 210, 300, "QRSTU")
	assert.False(t, a.IsNearNeighbour(b, 5))
	assert.True(t, a.IsNearNeighbour(b, 10))
}
