// Package names builds the searchable index over Unicode character names.
// The index is constructed once, before interactive use, and is read-only
// afterwards: every lowercase word that occurs in a character's display name
// maps to the ascending set of codepoints whose name contains that word as a
// whole token. Display-name lookups and word lookups are memoized in bounded
// caches sized to match the original tool's limits.
package names

import (
	"runtime"
	"sort"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/derekparker/trie"
	"github.com/golang/groupcache/lru"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/runenames"
)

const (
	// firstIndexed is the lowest codepoint worth naming; everything below
	// is a control character and can never be picked anyway.
	firstIndexed = 0x20

	wordCacheSize = 256
	nameCacheSize = 4096
)

// Source supplies the static codepoint → display-name dictionary the index
// is built from. Name returns the empty string for codepoints outside the
// dictionary; Max bounds the scan.
type Source interface {
	Name(cp rune) string
	Max() rune
}

type tableSource struct{}

func (tableSource) Name(cp rune) string { return runenames.Name(cp) }
func (tableSource) Max() rune           { return unicode.MaxRune }

// UnicodeTable returns the production source backed by the x/text rune name
// table.
func UnicodeTable() Source { return tableSource{} }

type staticSource struct {
	entries map[rune]string
	max     rune
}

func (s staticSource) Name(cp rune) string { return s.entries[cp] }
func (s staticSource) Max() rune           { return s.max }

// StaticSource wraps a fixed dictionary, mainly for tests and tools that
// bring their own name table.
func StaticSource(entries map[rune]string) Source {
	s := staticSource{entries: entries}
	for cp := range entries {
		if cp > s.max {
			s.max = cp
		}
	}
	return s
}

// Index is the immutable word index plus its lookup caches. It is owned by a
// single session and is not safe for concurrent mutation of the caches; the
// picker processes one event at a time, so none happens.
type Index struct {
	source    Source
	words     *trie.Trie
	wordCount int
	named     int
	wordCache *lru.Cache
	nameCache *lru.Cache
}

// NewIndex scans the source once and builds the word index. Name harvesting
// fans out across contiguous codepoint chunks; index insertion is serial.
func NewIndex(src Source) *Index {
	idx := &Index{
		source:    src,
		words:     trie.New(),
		wordCache: lru.New(wordCacheSize),
		nameCache: lru.New(nameCacheSize),
	}
	idx.build()
	return idx
}

type namedRune struct {
	cp   rune
	name string
}

func (idx *Index) build() {
	max := idx.source.Max()
	if max < firstIndexed {
		return
	}
	span := int(max) - firstIndexed + 1
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if workers > span {
		workers = span
	}
	chunk := span/workers + 1

	harvested := make([][]namedRune, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			lo := rune(firstIndexed + w*chunk)
			hi := lo + rune(chunk)
			if hi > max+1 {
				hi = max + 1
			}
			var out []namedRune
			for cp := lo; cp < hi; cp++ {
				if utf16.IsSurrogate(cp) {
					continue
				}
				name := idx.source.Name(cp)
				if name == "" || strings.HasPrefix(name, "<") {
					continue
				}
				out = append(out, namedRune{cp: cp, name: name})
			}
			harvested[w] = out
			return nil
		})
	}
	_ = g.Wait()

	// Chunks are processed in codepoint order, so every word's slice comes
	// out ascending; only adjacent duplicates (a word repeated within one
	// name) need dropping.
	byWord := make(map[string][]rune)
	for _, chunk := range harvested {
		idx.named += len(chunk)
		for _, entry := range chunk {
			for _, word := range strings.Fields(strings.ToLower(entry.name)) {
				if pts := byWord[word]; len(pts) > 0 && pts[len(pts)-1] == entry.cp {
					continue
				}
				byWord[word] = append(byWord[word], entry.cp)
			}
		}
	}
	for word, pts := range byWord {
		idx.words.Add(word, pts)
	}
	idx.wordCount = len(byWord)
}

// Lookup returns the ascending codepoint set for an exact word token, or nil
// when the word was never observed. Results are shared and must not be
// mutated by callers.
func (idx *Index) Lookup(word string) []rune {
	if cached, ok := idx.wordCache.Get(word); ok {
		pts, _ := cached.([]rune)
		return pts
	}
	var pts []rune
	if node, ok := idx.words.Find(word); ok {
		pts, _ = node.Meta().([]rune)
	}
	idx.wordCache.Add(word, pts)
	return pts
}

// NameOf returns the display name for cp with only its first rune
// upper-cased ("GRINNING FACE" → "Grinning face"), or the empty string for
// codepoints outside the dictionary.
func (idx *Index) NameOf(cp rune) string {
	if cached, ok := idx.nameCache.Get(cp); ok {
		name, _ := cached.(string)
		return name
	}
	name := ""
	if cp >= firstIndexed && cp <= idx.source.Max() && !utf16.IsSurrogate(cp) {
		if raw := idx.source.Name(cp); raw != "" && !strings.HasPrefix(raw, "<") {
			name = capitalize(raw)
		}
	}
	idx.nameCache.Add(cp, name)
	return name
}

// WordsOf returns the lowercase tokens of cp's display name.
func (idx *Index) WordsOf(cp rune) []string {
	return strings.Fields(strings.ToLower(idx.NameOf(cp)))
}

// SuggestPrefix returns indexed words beginning with prefix, shortest first
// and ties broken lexicographically, so callers get a stable completion
// order regardless of index construction order.
func (idx *Index) SuggestPrefix(prefix string) []string {
	if prefix == "" {
		return nil
	}
	matches := idx.words.PrefixSearch(prefix)
	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i]) != len(matches[j]) {
			return len(matches[i]) < len(matches[j])
		}
		return matches[i] < matches[j]
	})
	return matches
}

// Words returns the full token vocabulary.
func (idx *Index) Words() []string { return idx.words.Keys() }

// Size reports how many named codepoints the index covers.
func (idx *Index) Size() int { return idx.named }

// WordCount reports how many distinct tokens the index holds.
func (idx *Index) WordCount() int { return idx.wordCount }

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
