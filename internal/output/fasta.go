package output

import (
	"fmt"
	"io"

	"ervin/internal/hit"
)

// StreamFASTA streams FASTA records from a channel to the writer. Hits with no
// scaffold alignment are skipped.
func StreamFASTA(w io.Writer, in <-chan hit.Hit) error {
	var err error
	for h := range in {
		if err != nil || h.ScaffoldAlignment == "" {
			continue
		}
		_, err = fmt.Fprintf(w, ">%s\n%s\n", FASTATitle(h), h.ScaffoldAlignment)
	}
	return err
}

// WriteFASTA writes a slice of hits as FASTA records to the writer.
func WriteFASTA(w io.Writer, list []hit.Hit) error {
	for _, h := range list {
		if h.ScaffoldAlignment == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", FASTATitle(h), h.ScaffoldAlignment); err != nil {
			return err
		}
	}
	return nil
}
