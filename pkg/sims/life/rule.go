package life

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"nd-life/internal/core"
)

// ErrInvalidRule reports rule notation that cannot be parsed.
var ErrInvalidRule = errors.New("invalid rule")

// Rule lists the neighbour counts that give birth to an inactive cell and
// keep an active one alive.
type Rule struct {
	Birth   []int
	Survive []int
}

// Conway is the classic B3/S23 rule.
var Conway = Rule{Birth: []int{3}, Survive: []int{2, 3}}

// Next returns the state of a cell in the following generation given its
// current state and active neighbour count.
func (r Rule) Next(c core.Cell, neighbors int) core.Cell {
	if c == core.Active {
		if slices.Contains(r.Survive, neighbors) {
			return core.Active
		}
		return core.Inactive
	}
	if slices.Contains(r.Birth, neighbors) {
		return core.Active
	}
	return core.Inactive
}

// String formats the rule in B/S notation, e.g. "B3/S23". When any count is
// above 9 both halves use the comma form, and a lone count keeps a trailing
// comma so the text parses back to the same rule.
func (r Rule) String() string {
	wide := slices.ContainsFunc(r.Birth, isWide) || slices.ContainsFunc(r.Survive, isWide)
	return "B" + formatCounts(r.Birth, wide) + "/S" + formatCounts(r.Survive, wide)
}

func isWide(c int) bool { return c > 9 }

func formatCounts(counts []int, wide bool) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = strconv.Itoa(c)
	}
	if !wide {
		return strings.Join(parts, "")
	}
	if len(parts) == 1 {
		return parts[0] + ","
	}
	return strings.Join(parts, ",")
}

// ParseRule parses B/S notation. Both halves are required, may appear in
// either order and are case-insensitive. A half containing commas is read as
// a list of decimal counts ("B3,12", "B12,"), otherwise every digit is one
// count.
func ParseRule(s string) (Rule, error) {
	halves := strings.Split(strings.TrimSpace(s), "/")
	if len(halves) != 2 {
		return Rule{}, fmt.Errorf("%w %q: want B<counts>/S<counts>", ErrInvalidRule, s)
	}
	var r Rule
	var haveB, haveS bool
	for _, half := range halves {
		if half == "" {
			return Rule{}, fmt.Errorf("%w %q: empty half", ErrInvalidRule, s)
		}
		counts, err := parseCounts(half[1:])
		if err != nil {
			return Rule{}, fmt.Errorf("%w %q: %v", ErrInvalidRule, s, err)
		}
		switch half[0] {
		case 'B', 'b':
			if haveB {
				return Rule{}, fmt.Errorf("%w %q: birth given twice", ErrInvalidRule, s)
			}
			r.Birth, haveB = counts, true
		case 'S', 's':
			if haveS {
				return Rule{}, fmt.Errorf("%w %q: survival given twice", ErrInvalidRule, s)
			}
			r.Survive, haveS = counts, true
		default:
			return Rule{}, fmt.Errorf("%w %q: unknown prefix %q", ErrInvalidRule, s, half[0])
		}
	}
	return r, nil
}

func parseCounts(s string) ([]int, error) {
	var counts []int
	if strings.Contains(s, ",") {
		for _, field := range strings.Split(s, ",") {
			if strings.TrimSpace(field) == "" {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("bad count %q", field)
			}
			counts = append(counts, n)
		}
	} else {
		for _, ch := range s {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("bad count %q", ch)
			}
			counts = append(counts, int(ch-'0'))
		}
	}
	slices.Sort(counts)
	return slices.Compact(counts), nil
}
