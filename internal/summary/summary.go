// Package summary renders a human-readable report of a consolidation run.
package summary

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"ervin/internal/pipeline"
)

// Write renders the per-scaffold table followed by one line of engine
// counters.
func Write(w io.Writer, rep pipeline.Report) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scaffold", "Input", "Output"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	in, out := 0, 0
	scafs := rep.Scaffolds()
	for _, s := range scafs {
		table.Append([]string{s, fmt.Sprintf("%d", rep.Inputs[s]), fmt.Sprintf("%d", rep.Outputs[s])})
		in += rep.Inputs[s]
		out += rep.Outputs[s]
	}
	table.SetFooter([]string{
		fmt.Sprintf("Total Scaffolds %d", len(scafs)),
		fmt.Sprintf("%d", in),
		fmt.Sprintf("%d", out),
	})
	table.Render()

	st := rep.Stats
	_, err := fmt.Fprintf(w,
		"batches=%d steps=%d settle_rounds=%d merges=%d supersets=%d filtered=%d collapsed=%d retained=%d pass_through=%d\n",
		st.Batches, st.Steps, st.SettleRounds, st.Merges, st.Supersets, st.Filtered, st.Collapsed, st.Retained, st.PassThrough)
	return err
}
