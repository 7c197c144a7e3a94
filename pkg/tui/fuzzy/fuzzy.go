// ABOUTME: Fuzzy filtering of menu entries over sahilm/fuzzy
// ABOUTME: An empty or blank query keeps every entry in its original order

package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match is one entry that survived filtering.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Source is a list of entries to filter.
type Source = fuzzy.Source

// Strings adapts a string slice to Source.
type Strings []string

func (s Strings) String(i int) string { return s[i] }
func (s Strings) Len() int            { return len(s) }

// Filter returns the entries of items matching query, best match first.
func Filter(query string, items []string) []Match {
	return FilterFrom(query, Strings(items))
}

// FilterFrom filters any Source. With a blank query every entry matches,
// in source order with a zero score.
func FilterFrom(query string, data Source) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		all := make([]Match, data.Len())
		for i := range all {
			all[i] = Match{Str: data.String(i), Index: i}
		}
		return all
	}

	results := fuzzy.FindFrom(query, data)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Highlight applies style to each matched character of m.Str.
func Highlight(m Match, style func(string) string) string {
	if len(m.MatchedIndexes) == 0 || style == nil {
		return m.Str
	}
	hit := make(map[int]bool, len(m.MatchedIndexes))
	for _, i := range m.MatchedIndexes {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range m.Str {
		if hit[i] {
			b.WriteString(style(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
