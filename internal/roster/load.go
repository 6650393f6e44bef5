package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadMode controls how validation findings surface during loading.
type LoadMode int

const (
	// LoadModeFailFast stops at the first problem.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll gathers every schema and semantic finding.
	LoadModeCollectAll
)

// Load reads a roster file, picking the format by extension (.yaml, .yml or
// .csv). YAML rosters are checked against the embedded CUE schema before
// parsing.
//
// In fail-fast mode the first problem aborts loading. In collect-all mode
// Load keeps going where it can and also runs semantic validation, so a
// validation report shows everything at once; the returned roster may be
// nil when parsing was impossible.
//
// A roster with no exchange name gets one derived from the file name, so
// letters and history rows always have something to call the event.
func Load(path string, mode LoadMode) (*Roster, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{fmt.Errorf("reading roster: %w", err)}
	}

	var errs []error
	var r *Roster

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		for _, v := range SchemaErrors(filepath.Base(path), data) {
			errs = append(errs, v)
			if mode == LoadModeFailFast {
				return nil, errs
			}
		}
		r, err = ParseYAML(data)
	case ".csv":
		r, err = ParseCSV(data)
	default:
		return nil, []error{fmt.Errorf("unsupported roster format %q (expected .yaml, .yml or .csv)", filepath.Ext(path))}
	}
	if err != nil {
		return nil, append(errs, err)
	}

	if mode == LoadModeCollectAll {
		for _, v := range Validate(r) {
			errs = append(errs, v)
		}
	}

	if r.Exchange.Name == "" {
		base := filepath.Base(path)
		r.Exchange.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return r, errs
}
