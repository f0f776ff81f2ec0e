// internal/records/manifest.go
package records

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest lists batch files in fold order.
type Manifest struct {
	Batches []string `yaml:"batches"`
}

// LoadManifest reads a batch manifest. Files ending in .yaml or .yml are
// parsed as YAML; anything else is one path per line with blank and '#'
// lines skipped. Relative paths resolve against the manifest's directory.
func LoadManifest(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var m Manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		paths = m.Batches
	default:
		sc := bufio.NewScanner(strings.NewReader(string(data)))
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || line[0] == '#' {
				continue
			}
			paths = append(paths, line)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: manifest lists no batches", path)
	}
	dir := filepath.Dir(path)
	for i, p := range paths {
		p = strings.TrimSpace(p)
		if p != "-" && !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		paths[i] = p
	}
	return paths, nil
}
