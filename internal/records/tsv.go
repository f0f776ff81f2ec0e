// internal/records/tsv.go
package records

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ervin/internal/hit"
)

// HeaderField is the first column of an optional header line.
const HeaderField = "source_id"

const maxLine = 16 << 20

// LoadTSV reads every hit record in path.
func LoadTSV(path string) ([]hit.Hit, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadTSV(rc, path)
}

// ReadTSV parses tab-separated hit records from r. Blank lines and '#'
// comments are skipped, as is a header line before the first record.
// Parse errors are reported as name:line and wrap hit.ErrMalformedRecord.
func ReadTSV(r io.Reader, name string) ([]hit.Hit, error) {
	var out []hit.Hit
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || line[0] == '#' {
			continue
		}
		f := strings.Split(line, "\t")
		if len(out) == 0 && strings.TrimSpace(f[0]) == HeaderField {
			continue
		}
		h, err := hit.FromFields(f)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, ln, err)
		}
		out = append(out, h)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
