// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"ervin/internal/hit"
)

func itoa(n int) string { return strconv.Itoa(n) }

// WriteTSV writes hits as a tab-delimited table.
func WriteTSV(w io.Writer, list []hit.Hit, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, h := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(h)); err != nil {
			return err
		}
	}
	return nil
}

// StreamTSV writes hits from a channel as they arrive. It drains in on error
// so the producer never blocks.
func StreamTSV(w io.Writer, in <-chan hit.Hit, header bool) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, TSVHeader)
	}
	for h := range in {
		if err != nil {
			continue
		}
		_, err = fmt.Fprintln(w, FormatRowTSV(h))
	}
	return err
}
