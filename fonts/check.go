package fonts

import (
	"context"
	"strings"
)

// DefaultFont is the family the diagram is drawn with
const DefaultFont = "Virgil"

// Report is the outcome of a font lookup
type Report struct {
	Target  string  `json:"target"`
	Matches []Entry `json:"matches"`
	Err     error   `json:"-"`
}

// Found reports whether at least one listing line matched
func (r Report) Found() bool { return len(r.Matches) > 0 }

// Check lists the catalog and keeps every line mentioning target or the
// Virgil family. An empty target means Virgil. A listing failure is
// recorded in Report.Err, never returned.
func Check(ctx context.Context, catalog Catalog, target string) Report {
	if target == "" {
		target = DefaultFont
	}
	r := Report{Target: target}

	entries, err := catalog.List(ctx)
	if err != nil {
		r.Err = err
		return r
	}
	for _, e := range entries {
		if strings.Contains(e.Line, target) || strings.Contains(e.Line, DefaultFont) {
			r.Matches = append(r.Matches, e)
		}
	}
	return r
}
