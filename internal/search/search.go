// Package search resolves free-text queries against the name index. A query
// is lowercased and split on whitespace; the first word seeds the candidate
// set and every later word narrows it, preferring exact whole-token
// intersection and falling back to a substring scan over the full display
// name when a token matches nothing exactly. Results stay in ascending
// codepoint order throughout.
package search

import (
	"strings"

	"github.com/golang/groupcache/lru"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const resolveCacheSize = 256

// Index is the slice of the name index the resolver needs.
type Index interface {
	Lookup(word string) []rune
	NameOf(cp rune) string
	SuggestPrefix(prefix string) []string
	Words() []string
}

// Resolver turns queries into candidate codepoint sets, memoizing whole-query
// results so cursor movement and redraws never re-run a search.
type Resolver struct {
	index Index
	cache *lru.Cache
}

// NewResolver returns a resolver over index.
func NewResolver(index Index) *Resolver {
	return &Resolver{index: index, cache: lru.New(resolveCacheSize)}
}

// Resolve returns the ascending candidate set for query. The returned slice
// is shared with the cache and must not be mutated.
func (r *Resolver) Resolve(query string) []rune {
	if cached, ok := r.cache.Get(query); ok {
		pts, _ := cached.([]rune)
		return pts
	}
	pts := r.resolve(query)
	r.cache.Add(query, pts)
	return pts
}

func (r *Resolver) resolve(query string) []rune {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}
	candidates := r.index.Lookup(words[0])
	for _, word := range words[1:] {
		if len(candidates) == 0 {
			break
		}
		if exact := r.index.Lookup(word); len(exact) > 0 {
			if both := intersect(candidates, exact); len(both) > 0 {
				candidates = both
				continue
			}
		}
		candidates = r.filterBySubstring(candidates, word)
	}
	return candidates
}

// intersect merges two ascending codepoint sets into a fresh ascending set.
func intersect(a, b []rune) []rune {
	var out []rune
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func (r *Resolver) filterBySubstring(candidates []rune, word string) []rune {
	var out []rune
	for _, cp := range candidates {
		if strings.Contains(strings.ToLower(r.index.NameOf(cp)), word) {
			out = append(out, cp)
		}
	}
	return out
}

// Suggest proposes a replacement for the last word of a query that resolved
// to nothing: first the shortest indexed word with the same prefix, then the
// closest vocabulary word by edit distance. Returns the empty string when
// nothing better than the word itself exists.
func (r *Resolver) Suggest(query string) string {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return ""
	}
	last := words[len(words)-1]
	for _, completion := range r.index.SuggestPrefix(last) {
		if completion != last {
			return completion
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(last, r.index.Words())
	best := ""
	bestDistance := -1
	for _, rank := range ranks {
		if rank.Target == last {
			continue
		}
		if bestDistance == -1 || rank.Distance < bestDistance ||
			(rank.Distance == bestDistance && rank.Target < best) {
			best = rank.Target
			bestDistance = rank.Distance
		}
	}
	return best
}
