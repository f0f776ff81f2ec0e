// internal/writers/hit.go
package writers

import (
	"io"

	"ervin/internal/hit"
	"ervin/internal/output"
)

func drain(ch <-chan hit.Hit) []hit.Hit {
	list := make([]hit.Hit, 0, 128)
	for h := range ch {
		list = append(list, h)
	}
	return list
}

func init() {
	Register(output.FormatTSV, func(w io.Writer, a Args) error {
		return output.StreamTSV(w, a.In, a.Header)
	})
	Register(output.FormatFASTA, func(w io.Writer, a Args) error {
		return output.StreamFASTA(w, a.In)
	})
	Register(output.FormatJSON, func(w io.Writer, a Args) error {
		return output.WriteJSON(w, drain(a.In))
	})
	Register(output.FormatJSONL, func(w io.Writer, a Args) error {
		pipe, done := StartHitJSONLWriter(w, 64)
		for h := range a.In {
			pipe <- h
		}
		close(pipe)
		return <-done
	})
	Register(output.FormatGFF, func(w io.Writer, a Args) error {
		return output.WriteGFF(w, drain(a.In))
	})
}

// StartHitWriter spins up a writer goroutine for consolidated hits in the
// given format. Close the returned channel when done, then read the error.
// An unknown format drains the channel and reports the error.
func StartHitWriter(out io.Writer, format string, header bool, bufSize int) (chan<- hit.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan hit.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		err := WriteHits(format, out, Args{Header: header, In: in})
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
