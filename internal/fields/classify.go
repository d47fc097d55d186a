package fields

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// boringValues are the members a column may contain and still carry no
// information: blank and zero-like.
var boringValues = Set{"": {}, "0": {}, "0.0": {}}

// Render writes the one-line summary for the named column. The tiers apply
// in strict priority order:
//
//  1. boring   — set ⊆ {"", "0", "0.0"}
//  2. constant — exactly one member
//  3. limited  — 2 to 5 members, listed in full
//  4. ranged   — 6+ members, reported as count plus min/max
//
// The set itself is never mutated, so classifying one column cannot affect
// another.
func Render(w io.Writer, name string, set Set) {
	if subsetOfBoring(set) {
		fmt.Fprintf(w, "boring: %s\n", name)
		return
	}

	if len(set) == 1 {
		for v := range set {
			fmt.Fprintf(w, "constant: %s=%s\n", name, v)
		}
		return
	}

	if len(set) <= 5 {
		fmt.Fprintf(w, "limited: %s=%s\n", name, bracketList(members(set)))
		return
	}

	renderRanged(w, name, set)
}

// renderRanged handles the 6+ member tier. The empty string, when present,
// is excluded from the min/max computation (but not from the count) and
// noted in the output.
func renderRanged(w io.Writer, name string, set Set) {
	values := make([]string, 0, len(set))
	hadEmpty := false
	for v := range set {
		if v == "" {
			hadEmpty = true
			continue
		}
		values = append(values, v)
	}

	var minVal, maxVal, label string
	for _, attempt := range rangeAttempts {
		if lo, hi, lbl, ok := attempt(values); ok {
			minVal, maxVal, label = lo, hi, lbl
			break
		}
	}

	suffix := ""
	if hadEmpty {
		suffix = " excluding empties"
	}
	fmt.Fprintf(w, "%d different %svalues for %s ranging from %s to %s%s\n",
		len(set), label, name, minVal, maxVal, suffix)
}

// rangeAttempt tries one interpretation of a column's non-empty values. On
// success it returns the rendered min and max plus the type label; a single
// value failing the interpretation fails the whole attempt, demoting the
// column to the next attempt.
type rangeAttempt func(values []string) (minVal, maxVal, label string, ok bool)

// rangeAttempts in demotion order: integer, float, raw string. The string
// attempt always succeeds, so the loop in renderRanged cannot fall through.
var rangeAttempts = []rangeAttempt{intRange, floatRange, stringRange}

func intRange(values []string) (string, string, string, bool) {
	var lo, hi int64
	for i, v := range values {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return "", "", "", false
		}
		if i == 0 || n < lo {
			lo = n
		}
		if i == 0 || n > hi {
			hi = n
		}
	}
	return strconv.FormatInt(lo, 10), strconv.FormatInt(hi, 10), "integer ", true
}

func floatRange(values []string) (string, string, string, bool) {
	var lo, hi float64
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", "", "", false
		}
		if i == 0 || f < lo {
			lo = f
		}
		if i == 0 || f > hi {
			hi = f
		}
	}
	return strconv.FormatFloat(lo, 'g', -1, 64),
		strconv.FormatFloat(hi, 'g', -1, 64), "float ", true
}

func stringRange(values []string) (string, string, string, bool) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, "", true
}

// subsetOfBoring reports whether every member of set is boring.
func subsetOfBoring(set Set) bool {
	for v := range set {
		if _, ok := boringValues[v]; !ok {
			return false
		}
	}
	return true
}

// members returns the set's members sorted lexicographically.
func members(set Set) []string {
	vals := make([]string, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return vals
}

// bracketList renders values as a bracketed list of quoted members, e.g.
// ['1', '2', '3']. Members quote with single quotes, switching to double
// quotes when the member itself contains a single quote.
func bracketList(values []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteMember(v))
	}
	b.WriteByte(']')
	return b.String()
}

func quoteMember(v string) string {
	if strings.Contains(v, "'") && !strings.Contains(v, `"`) {
		return `"` + v + `"`
	}
	return "'" + strings.ReplaceAll(v, "'", `\'`) + "'"
}
