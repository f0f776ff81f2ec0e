// internal/engine/engine_test.go
package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ervin/internal/hit"
)

func mk(id, scaf string, first, second int, aln string) hit.Hit {
	return hit.New(hit.Raw{
		SourceID:          id,
		ScaffoldID:        scaf,
		ScaffoldLength:    10000,
		First:             first,
		Second:            second,
		EValue:            "1e-10",
		AlignmentLength:   abs(second - first),
		QuerySequence:     "Q",
		ScaffoldAlignment: aln,
		Frame:             1,
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

type span struct {
	scaf       string
	start, end int
}

func spans(hs []hit.Hit) []span {
	out := make([]span, 0, len(hs))
	for _, h := range hs {
		out = append(out, span{h.ScaffoldID, h.Start, h.End})
	}
	return out
}

// three literal batches used by the property tests
func batchA() []hit.Hit {
	return []hit.Hit{mk("a1", "S1", 100, 200, "AAAAA"), mk("a2", "S3", 900, 700, "RRRR")}
}

func batchB() []hit.Hit {
	return []hit.Hit{mk("b1", "S1", 210, 300, "BBBBB"), mk("b2", "S3", 690, 600, "SSSS")}
}

func batchC() []hit.Hit {
	return []hit.Hit{mk("c1", "S1", 150, 250, "CCCCC"), mk("c2", "S2", 10, 90, "DDD"), mk("c3", "S3", 800, 650, "TTTT")}
}

func TestNearNeighbourScenario(t *testing.T) {
	e := New(Config{})
	a := mk("A", "S1", 100, 200, "MKVLA")
	b := mk("B", "S1", 210, 300, "QRSTU")

	res, err := e.ConsolidateBatches([][]hit.Hit{{a}, {b}})
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)

	got := res.Hits[0]
	assert.Equal(t, 100, got.Start)
	assert.Equal(t, 300, got.End)
	assert.Equal(t, "MKVLA----QRSTU", got.ScaffoldAlignment)
	assert.Equal(t, 196, got.AlignmentLength)
	assert.Equal(t, "A_B", got.SourceID())
	assert.Equal(t, 1, res.Stats.Merges)
}

func TestSupersetScenario(t *testing.T) {
	e := New(Config{})
	a := mk("A", "S1", 100, 200, "MKVLA")
	c := mk("C", "S1", 120, 180, "KV")

	out, st, err := e.Consolidate(Group([]hit.Hit{c}), Group([]hit.Hit{a}))
	require.NoError(t, err)
	require.Len(t, out["S1"], 1)
	assert.True(t, out["S1"][0].Equal(a))
	assert.Equal(t, 1, st.Supersets)
	assert.Equal(t, 0, st.Merges)
}

func TestDifferingFramesSurviveSelfFold(t *testing.T) {
	e := New(Config{})
	x := mk("X", "S1", 100, 200, "AAA")
	y := mk("Y", "S1", 100, 200, "AAA")
	y.Frame = 2

	res, err := e.ConsolidateBatches([][]hit.Hit{{x, y}})
	require.NoError(t, err)
	require.Len(t, res.Hits, 2)
	assert.True(t, res.Hits[0].Equal(x))
	assert.True(t, res.Hits[1].Equal(y))
	assert.Zero(t, res.Stats.Merges)
}

func TestSingleBatchSelfFold(t *testing.T) {
	e := New(Config{})
	res, err := e.ConsolidateBatches([][]hit.Hit{{
		mk("A", "S1", 100, 200, "MKVLA"),
		mk("C", "S1", 120, 180, "KV"),
		mk("D", "S2", 5, 50, "WW"),
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.Batches)
	assert.Equal(t, 1, res.Stats.Steps)
	assert.Equal(t, []span{{"S1", 100, 200}, {"S2", 5, 50}}, spans(res.Hits))
	assert.Equal(t, 1, res.Stats.Collapsed)
}

func TestOrderIndependentCoordinates(t *testing.T) {
	e := New(Config{})

	fwd, err := e.ConsolidateBatches([][]hit.Hit{batchA(), batchB(), batchC()})
	require.NoError(t, err)
	rev, err := e.ConsolidateBatches([][]hit.Hit{batchC(), batchB(), batchA()})
	require.NoError(t, err)

	assert.Equal(t, spans(fwd.Hits), spans(rev.Hits))
	assert.Equal(t, []span{{"S1", 100, 300}, {"S2", 10, 90}, {"S3", 600, 900}}, spans(fwd.Hits))
	assert.NotEqual(t, fwd.Hits[0].SourceID(), rev.Hits[0].SourceID())
}

func TestScaffoldCompleteness(t *testing.T) {
	e := New(Config{})
	batches := []Groups{Group(batchA()), Group(batchB()), Group(batchC())}

	final, _, err := e.Reduce(batches)
	require.NoError(t, err)

	want := map[string]bool{}
	for _, b := range batches {
		for scaf := range b {
			want[scaf] = true
		}
	}
	assert.Len(t, final, len(want))
	for scaf := range want {
		assert.Contains(t, final, scaf)
	}
}

func TestContainment(t *testing.T) {
	e := New(Config{})
	raw := map[string]hit.Hit{}
	batches := [][]hit.Hit{batchA(), batchB(), batchC()}
	for _, b := range batches {
		for _, h := range b {
			raw[h.SourceID()] = h
		}
	}

	res, err := e.ConsolidateBatches(batches)
	require.NoError(t, err)
	for _, out := range res.Hits {
		for _, id := range out.SourceIDs {
			r, ok := raw[id]
			require.True(t, ok, "unknown source %s", id)
			assert.LessOrEqual(t, out.Start, r.Start, "%s loses start of %s", out, id)
			assert.GreaterOrEqual(t, out.End, r.End, "%s loses end of %s", out, id)
		}
	}
	for _, r := range raw {
		covered := false
		for _, out := range res.Hits {
			if out.ScaffoldID == r.ScaffoldID && out.Start <= r.Start && out.End >= r.End {
				covered = true
			}
		}
		assert.True(t, covered, "raw hit %s not covered", r)
	}
}

func TestIdempotentOnConsolidatedBatch(t *testing.T) {
	e := New(Config{})
	first, err := e.ConsolidateBatches([][]hit.Hit{batchA(), batchB(), batchC()})
	require.NoError(t, err)

	for i, m := range first.Hits {
		for j, c := range first.Hits {
			if i != j {
				require.Equal(t, hit.Unrelated, hit.Classify(m, c, hit.DefaultNeighbourGap), "%s vs %s", m, c)
			}
		}
	}

	again, err := e.ConsolidateBatches([][]hit.Hit{first.Hits})
	require.NoError(t, err)
	require.Len(t, again.Hits, len(first.Hits))
	for i := range first.Hits {
		assert.True(t, first.Hits[i].Equal(again.Hits[i]), "%s != %s", first.Hits[i], again.Hits[i])
	}
}

func TestPassThroughCopiesUniqueScaffolds(t *testing.T) {
	e := New(Config{MinAlignmentLength: 1000})
	a := Group([]hit.Hit{mk("a", "S1", 1, 10, "A")})
	b := Group([]hit.Hit{mk("b", "S2", 1, 10, "B")})

	out, st, err := e.Consolidate(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, st.PassThrough)
	assert.True(t, out["S1"][0].Equal(a["S1"][0]))
	assert.True(t, out["S2"][0].Equal(b["S2"][0]))
}

func TestAlignmentThresholdFiltersCandidates(t *testing.T) {
	e := New(Config{MinAlignmentLength: 100})
	short := mk("short", "S1", 500, 600, "S") // length 100, not above threshold
	long := mk("long", "S1", 100, 250, "L")

	out, st, err := e.Consolidate(Group([]hit.Hit{short, long}), Group([]hit.Hit{long}))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Filtered)
	require.Len(t, out["S1"], 1)
	assert.Equal(t, "long", out["S1"][0].SourceID())
}

func TestFilterByAlignmentLength(t *testing.T) {
	hs := []hit.Hit{mk("a", "S1", 0, 10, ""), mk("b", "S1", 0, 11, ""), mk("c", "S1", 0, 5, "")}
	assert.Len(t, FilterByAlignmentLength(hs, 0), 3)
	got := FilterByAlignmentLength(hs, 10)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].SourceID())
}

func TestKeepUnrelatedRetainsComparators(t *testing.T) {
	a := Group([]hit.Hit{mk("a", "S1", 100, 200, "A")})
	b := Group([]hit.Hit{mk("far", "S1", 5000, 5100, "F"), mk("near", "S1", 210, 260, "N")})

	out, st, err := New(Config{}).Consolidate(a, b)
	require.NoError(t, err)
	assert.Equal(t, []span{{"S1", 100, 260}}, spans(out["S1"]))
	assert.Zero(t, st.Retained)

	out, st, err = New(Config{KeepUnrelated: true}).Consolidate(a, b)
	require.NoError(t, err)
	assert.Equal(t, []span{{"S1", 100, 260}, {"S1", 5000, 5100}}, spans(out["S1"]))
	assert.Equal(t, 1, st.Retained)
}

func TestConsolidateThreadCountIndependent(t *testing.T) {
	var as, bs []hit.Hit
	for i := 0; i < 40; i++ {
		scaf := fmt.Sprintf("scaf%02d", i)
		as = append(as, mk(fmt.Sprintf("a%d", i), scaf, 100, 200, "AAAA"), mk(fmt.Sprintf("x%d", i), scaf, 1000, 1100, "XX"))
		bs = append(bs, mk(fmt.Sprintf("b%d", i), scaf, 190+i, 400, "BBBB"))
	}
	serial, sst, err := New(Config{Threads: 1}).Consolidate(Group(as), Group(bs))
	require.NoError(t, err)
	parallel, pst, err := New(Config{Threads: 8}).Consolidate(Group(as), Group(bs))
	require.NoError(t, err)

	assert.True(t, serial.equal(parallel))
	assert.Equal(t, sst, pst)
}

func TestReduceNoBatches(t *testing.T) {
	_, _, err := New(Config{}).Reduce(nil)
	require.ErrorIs(t, err, ErrNoBatches)

	_, err = New(Config{}).ConsolidateBatches(nil)
	require.ErrorIs(t, err, ErrNoBatches)
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	res, err := New(Config{}).ConsolidateBatches([][]hit.Hit{{}, {}})
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestGroupingDefectIsInvariantError(t *testing.T) {
	bad := Groups{"S1": {mk("a", "S2", 1, 10, "A")}}
	_, _, err := New(Config{}).Consolidate(bad, Groups{})
	require.ErrorIs(t, err, hit.ErrInvariant)
}

func TestMissingComparatorScaffold(t *testing.T) {
	e := New(Config{})
	_, _, err := e.consolidateScaffold("S1", []hit.Hit{mk("a", "S1", 1, 10, "A")}, Groups{})
	require.ErrorIs(t, err, hit.ErrInvariant)
}

func TestReduceProgressAndSettle(t *testing.T) {
	var calls [][2]int
	e := New(Config{
		Settle:   true,
		Progress: func(done, total int) { calls = append(calls, [2]int{done, total}) },
	})
	batches := []Groups{Group(batchA()), Group(batchB()), Group(batchC())}
	final, st, err := e.Reduce(batches)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, calls)
	assert.Equal(t, 1, st.SettleRounds)
	assert.Equal(t, 3, st.Steps)
	assert.Equal(t, []span{{"S1", 100, 300}, {"S2", 10, 90}, {"S3", 600, 900}}, spans(Flatten(final)))
}

func TestMergeTwoUsesEngineOptions(t *testing.T) {
	e := New(Config{CodonRatio: 5, GapFill: '.'})
	got, err := e.MergeTwo(mk("A", "S1", 100, 200, "MK"), mk("B", "S1", 210, 300, "QR"))
	require.NoError(t, err)
	assert.Equal(t, "MK..QR", got.ScaffoldAlignment)
	assert.Equal(t, 198, got.AlignmentLength)
}

func TestGroupPreservesOrder(t *testing.T) {
	hs := []hit.Hit{mk("1", "S1", 1, 2, ""), mk("2", "S2", 1, 2, ""), mk("3", "S1", 5, 6, "")}
	g := Group(hs)
	require.Len(t, g["S1"], 2)
	assert.Equal(t, "1", g["S1"][0].SourceID())
	assert.Equal(t, "3", g["S1"][1].SourceID())
	assert.Equal(t, []string{"S1", "S2"}, g.Scaffolds())
	assert.Equal(t, 3, g.Len())
}
