// Package aggregate derives groupings, filters, statistics and consolidated
// shopping needs from collections already loaded from the repositories.
// Every function is pure: inputs are never modified and no I/O is performed.
package aggregate

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collationTag is the locale used to order names
var collationTag = language.English

// Collators and casers keep internal buffers, so each call builds its own.

func newNameCollator() *collate.Collator {
	return collate.New(collationTag)
}

func newFolder() cases.Caser {
	return cases.Fold()
}

// matcher performs case-insensitive substring tests against a fixed query
type matcher struct {
	folder cases.Caser
	query  string
}

// newMatcher returns nil when query is empty or whitespace, meaning "match everything"
func newMatcher(query string) *matcher {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	f := newFolder()
	return &matcher{folder: f, query: f.String(q)}
}

func (m *matcher) matches(s string) bool {
	return strings.Contains(m.folder.String(s), m.query)
}

func (m *matcher) matchesAny(values []string) bool {
	for _, v := range values {
		if m.matches(v) {
			return true
		}
	}
	return false
}
