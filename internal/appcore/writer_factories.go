package appcore

import (
	"io"

	"ervin/internal/hit"
	"ervin/internal/output"
	"ervin/internal/writers"
)

// WriterFactory starts a writer goroutine for consolidated hits.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- hit.Hit, <-chan error)
}

// HitWriterFactory writes one format through the writers registry.
type HitWriterFactory struct {
	Format string
	Header bool
}

func NewHitWriterFactory(format string, header bool) HitWriterFactory {
	return HitWriterFactory{Format: format, Header: header}
}

func (w HitWriterFactory) Start(out io.Writer, bufSize int) (chan<- hit.Hit, <-chan error) {
	return writers.StartHitWriter(out, w.Format, w.Header, bufSize)
}

// Ext is the file extension used for this format in --output-dir mode.
func (w HitWriterFactory) Ext() string {
	if w.Format == output.FormatJSONL {
		return "jsonl"
	}
	return w.Format
}

// DirFactories are the writers used for --output-dir: one TSV and one FASTA
// file per run.
func DirFactories(header bool) []HitWriterFactory {
	return []HitWriterFactory{
		NewHitWriterFactory(output.FormatTSV, header),
		NewHitWriterFactory(output.FormatFASTA, false),
	}
}
