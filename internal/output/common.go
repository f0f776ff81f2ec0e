package output

// Output formats understood by the writers.
const (
	FormatTSV   = "tsv"
	FormatFASTA = "fasta"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatGFF   = "gff"
)

// Formats lists every supported format in help order.
var Formats = []string{FormatTSV, FormatFASTA, FormatJSON, FormatJSONL, FormatGFF}

// TSVHeader is the canonical header row for TSV output. It names the ten raw
// record fields in input order.
const TSVHeader = "source_id\tscaffold_id\tscaffold_length\tstart\tend\te_value\talignment_length\tquery_sequence\tscaffold_alignment\tframe"
