// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"ervin/internal/hit"
)

// Args is what a registered writer receives. In is closed by the producer.
type Args struct {
	Header bool
	In     <-chan hit.Hit
}

// WriteFunc serializes every hit from args.In to w.
type WriteFunc func(w io.Writer, args Args) error

// Writer registry (format → handler). Register in init() blocks.
var HitWriters = map[string]WriteFunc{}

// Register adds or replaces the handler for format (last wins).
func Register(format string, fn WriteFunc) { HitWriters[format] = fn }

// Registered returns the known formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(HitWriters))
	for f := range HitWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteHits dispatches to the handler for format.
func WriteHits(format string, w io.Writer, args Args) error {
	fn, ok := HitWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, args)
}
