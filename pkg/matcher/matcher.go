// Package matcher ranks catalog records against a complete set of answers.
package matcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/duynguyendang/plantcurator/pkg/catalog"
	"github.com/duynguyendang/plantcurator/pkg/common/errors"
	"github.com/duynguyendang/plantcurator/pkg/vocab"
)

// MaxResults caps every result list.
const MaxResults = 3

// Mode selects the admission policy.
type Mode string

const (
	// ModeExact admits only records matching all six answers, in catalog order.
	ModeExact Mode = "exact"
	// ModeScored admits records matching at least one answer, best first.
	ModeScored Mode = "scored"
)

// ParseMode parses a mode name. The empty string yields def.
func ParseMode(s string, def Mode) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return def, nil
	case ModeExact:
		return ModeExact, nil
	case ModeScored:
		return ModeScored, nil
	}
	return "", fmt.Errorf("%w: unknown match mode %q", errors.ErrInvalidInput, s)
}

// ScoredMatch pairs a record with the number of answers it satisfies.
type ScoredMatch struct {
	Score  int                 `json:"score"`
	Record catalog.PlantRecord `json:"record"`
}

// CountMatches returns how many of the six attributes equal the criteria.
func CountMatches(r catalog.PlantRecord, c Criteria) int {
	attrs := r.Attributes()
	want := c.Codes()
	n := 0
	for i := range want {
		if attrs[i] == want[i] {
			n++
		}
	}
	return n
}

// Match ranks the catalog against c and returns at most MaxResults entries.
// The result depends only on its arguments; an empty catalog yields an empty result.
func Match(cat *catalog.Catalog, c Criteria, mode Mode) []ScoredMatch {
	var admitted []ScoredMatch
	for i := 0; i < cat.Len(); i++ {
		r := cat.At(i)
		n := CountMatches(r, c)
		switch mode {
		case ModeExact:
			if n == vocab.NumQuestions {
				admitted = append(admitted, ScoredMatch{Score: n, Record: r})
				if len(admitted) == MaxResults {
					return admitted
				}
			}
		default:
			if n >= 1 {
				admitted = append(admitted, ScoredMatch{Score: n, Record: r})
			}
		}
	}

	if mode != ModeExact {
		// Stable keeps catalog order among equal scores
		sort.SliceStable(admitted, func(i, j int) bool {
			return admitted[i].Score > admitted[j].Score
		})
	}
	if len(admitted) > MaxResults {
		admitted = admitted[:MaxResults]
	}
	return admitted
}
