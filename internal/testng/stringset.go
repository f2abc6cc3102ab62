package testng

import (
	"sort"
	"strings"
)

// stringSet accumulates non-blank strings with set semantics. Blank entries
// are filtered on insertion and duplicates collapse silently.
type stringSet map[string]struct{}

func newStringSet() stringSet {
	return make(stringSet)
}

// add inserts each trimmed non-blank value into the set.
func (s stringSet) add(values ...string) {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		s[v] = struct{}{}
	}
}

// values returns the members sorted for deterministic output.
func (s stringSet) values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// join returns the sorted members joined by sep. When quote is true each
// member is wrapped in literal double quotes before joining.
func (s stringSet) join(sep string, quote bool) string {
	vals := s.values()
	if quote {
		for i, v := range vals {
			vals[i] = `"` + v + `"`
		}
	}
	return strings.Join(vals, sep)
}
