// Package drugindex holds the curated drug alias database: an immutable,
// case-insensitive mapping from every known alias, brand name, or OCR
// misspelling to a canonical drug name. It is built once at startup and
// shared read-only across requests.
package drugindex

import (
	"log"
	"strings"
	"unicode"
)

// Index resolves aliases to canonical drug names. It performs exact
// (case-folded) lookups only; fuzzy resolution against this index is the
// matcher's job.
type Index struct {
	aliasToCanonical map[string]string
	aliases          []string
}

// New builds the index from the built-in alias database.
func New() *Index {
	return newFromTable(drugAliases)
}

func newFromTable(table map[string][]string) *Index {
	idx := &Index{aliasToCanonical: make(map[string]string)}
	for canonical, aliases := range table {
		display := titleCase(canonical)
		for _, alias := range aliases {
			key := strings.ToLower(alias)
			if prev, ok := idx.aliasToCanonical[key]; ok && prev != display {
				// Last write wins, matching source-data order semantics,
				// but collisions indicate a curation error worth surfacing.
				log.Printf("drugindex: alias %q maps to both %q and %q, keeping %q", key, prev, display, display)
			}
			if _, ok := idx.aliasToCanonical[key]; !ok {
				idx.aliases = append(idx.aliases, key)
			}
			idx.aliasToCanonical[key] = display
		}
	}
	return idx
}

// Canonicalize returns the canonical drug name for an exactly known
// alias, case-insensitively. The second return is false when the token
// is not in the database.
func (idx *Index) Canonicalize(token string) (string, bool) {
	name, ok := idx.aliasToCanonical[strings.ToLower(strings.TrimSpace(token))]
	return name, ok
}

// Aliases returns every registered alias, lowercased. The slice is shared;
// callers must not mutate it.
func (idx *Index) Aliases() []string {
	return idx.aliases
}

// Len reports the number of distinct aliases.
func (idx *Index) Len() int {
	return len(idx.aliasToCanonical)
}

// titleCase capitalizes the first letter of every word, where a word
// starts after any non-letter ("vitamin b12" -> "Vitamin B12").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
