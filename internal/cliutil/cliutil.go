// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"ervin/internal/records"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals. Matches
// come back in lexical order, which becomes the fold order.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}

// ResolveBatches returns the batch paths in fold order, either from the
// manifest or from the expanded positionals. At most one input may be stdin.
func ResolveBatches(posArgs []string, manifest string) ([]string, error) {
	var (
		paths []string
		err   error
	)
	if manifest != "" {
		paths, err = records.LoadManifest(manifest)
	} else {
		paths, err = ExpandPositionals(posArgs)
	}
	if err != nil {
		return nil, err
	}
	stdin := 0
	for _, p := range paths {
		if p == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, errors.New("stdin ('-') may be given only once")
	}
	return paths, nil
}
