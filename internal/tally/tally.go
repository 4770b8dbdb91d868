package tally

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/qepting91/reddit-hotwalk/internal/domain"
)

const punctuation = `.,!?;:"()[]{}`

// Normalize lowercases keywords and collapses duplicates, keeping first-seen order
func Normalize(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	var out []string
	for _, k := range keywords {
		k = strings.ToLower(k)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Token cleans one whitespace-separated word of a title for matching
func Token(word string) string {
	return strings.Trim(strings.ToLower(word), punctuation)
}

// Count tallies exact token matches of keywords across titles. Keywords that
// never match are dropped; the rest are ordered by count desc, keyword asc.
func Count(titles, keywords []string) []domain.Entry {
	counts := make(map[string]int)
	for _, k := range Normalize(keywords) {
		counts[k] = 0
	}

	for _, title := range titles {
		for _, word := range strings.Fields(title) {
			tok := Token(word)
			if _, ok := counts[tok]; ok {
				counts[tok]++
			}
		}
	}

	var entries []domain.Entry
	for k, n := range counts {
		if n > 0 {
			entries = append(entries, domain.Entry{Keyword: k, Count: n})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Keyword < entries[j].Keyword
	})
	return entries
}

// Write prints one "keyword: count" line per entry
func Write(w io.Writer, entries []domain.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: %d\n", e.Keyword, e.Count); err != nil {
			return err
		}
	}
	return nil
}
