package classify

import (
	"regexp"
	"strconv"
	"strings"
)

// maxReasonableYears bounds the years-of-experience values accepted from
// pattern matches. Larger numbers are almost always phone digits or dates.
const maxReasonableYears = 50

// Classifier scores resume text against a fixed keyword table and a fixed
// set of years-of-experience patterns. It is immutable after construction
// and safe for unsynchronized concurrent use.
type Classifier struct {
	domains  []DomainKeywords
	patterns []*regexp.Regexp
}

// defaultPatterns match "N years" phrasing in lowercased text. Each pattern
// captures exactly one integer group.
var defaultPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*\+?\s*years?`),
	regexp.MustCompile(`(\d+)\s*\+?\s*yrs?`),
	regexp.MustCompile(`over\s+(\d+)\s+years?`),
	regexp.MustCompile(`more\s+than\s+(\d+)\s+years?`),
	regexp.MustCompile(`experience\s*(?:of|:)\s*(\d+)`),
}

// New creates a classifier with the built-in keyword table and patterns.
func New() *Classifier {
	return NewWithTable(defaultDomains)
}

// NewWithTable creates a classifier over a caller-supplied keyword table.
// The slice order of the table fixes the tie-break order.
func NewWithTable(domains []DomainKeywords) *Classifier {
	return &Classifier{
		domains:  domains,
		patterns: defaultPatterns,
	}
}

// Domain returns the domain whose keywords occur most often in text, or
// DomainOther when nothing matches. Scoring is a case-insensitive substring
// occurrence count summed over the domain's keyword list. Ties go to the
// domain declared first in the table.
func (cl *Classifier) Domain(text string) string {
	lower := strings.ToLower(text)

	best := DomainOther
	bestScore := 0
	for _, d := range cl.domains {
		score := 0
		for _, kw := range d.Keywords {
			score += strings.Count(lower, kw)
		}
		if score > bestScore {
			best = d.Name
			bestScore = score
		}
	}
	return best
}

// Experience buckets the largest plausible years-of-experience mention in
// text into one of the four tier labels. No valid mention yields TierFresher.
func (cl *Classifier) Experience(text string) string {
	lower := strings.ToLower(text)

	maxYears := 0
	for _, p := range cl.patterns {
		for _, m := range p.FindAllStringSubmatch(lower, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 0 || n > maxReasonableYears {
				continue
			}
			if n > maxYears {
				maxYears = n
			}
		}
	}

	switch {
	case maxYears > 6:
		return TierSenior
	case maxYears >= 4:
		return TierMid
	case maxYears >= 1:
		return TierJunior
	default:
		return TierFresher
	}
}

// DomainNames returns the table's domain labels in declaration order.
func (cl *Classifier) DomainNames() []string {
	names := make([]string, len(cl.domains))
	for i, d := range cl.domains {
		names[i] = d.Name
	}
	return names
}

// TierNames returns the four experience tier labels from lowest to highest.
func TierNames() []string {
	return []string{TierFresher, TierJunior, TierMid, TierSenior}
}
