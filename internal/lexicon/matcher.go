// Package lexicon holds the fixed rhetorical vocabularies and the pattern
// matching primitive shared by the persuasion, fallacy and manipulation
// analyzers. All tables are package-level, compiled once at init, and
// read-only afterwards, so concurrent analysis runs can share them freely.
package lexicon

import (
	"regexp"
	"strings"
)

// Category is a named, ordered set of compiled match patterns.
type Category struct {
	Name     string
	Patterns []*regexp.Regexp
}

// Table is an ordered collection of categories. Order matters: match results
// and first-match-wins scans follow table order.
type Table []Category

// Result reports the matches of one category in one text.
type Result struct {
	Count   int      // total match count, not deduplicated
	Matches []string // distinct matched terms, in first-occurrence order
}

// Match scans text against every category of the table and reports, per
// category, the total match count and the distinct matched terms. Output is
// deterministic for identical input.
func Match(text string, table Table) map[string]Result {
	out := make(map[string]Result, len(table))
	for _, cat := range table {
		var res Result
		seen := make(map[string]bool)
		for _, pat := range cat.Patterns {
			for _, m := range pat.FindAllString(text, -1) {
				res.Count++
				key := strings.ToLower(m)
				if !seen[key] {
					seen[key] = true
					res.Matches = append(res.Matches, m)
				}
			}
		}
		out[cat.Name] = res
	}
	return out
}

// CompileWords compiles literal terms into word-boundary-anchored,
// case-insensitive patterns.
func CompileWords(words []string) []*regexp.Regexp {
	pats := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		pats[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return pats
}

// compileRaw compiles regex patterns as supplied; they are expected to carry
// their own boundary handling and to be written for lower-cased input.
func compileRaw(patterns []string) []*regexp.Regexp {
	pats := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		pats[i] = regexp.MustCompile(p)
	}
	return pats
}

// ContainsPhrase reports whether phrase occurs in text as a substring,
// comparing both lower-cased. Used by the phrase-list detectors, which do not
// want word-boundary semantics.
func ContainsPhrase(text, phrase string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(phrase))
}
