package search

import (
	"reflect"
	"strings"
	"testing"
)

// fakeIndex is a hand-rolled dictionary that counts lookups so tests can
// observe memoization.
type fakeIndex struct {
	names   map[rune]string
	lookups int
}

func newFakeIndex(names map[rune]string) *fakeIndex {
	return &fakeIndex{names: names}
}

func (f *fakeIndex) Lookup(word string) []rune {
	f.lookups++
	var out []rune
	for cp, name := range f.names {
		for _, token := range strings.Fields(strings.ToLower(name)) {
			if token == word {
				out = append(out, cp)
				break
			}
		}
	}
	sortRunes(out)
	return out
}

func (f *fakeIndex) NameOf(cp rune) string { return f.names[cp] }

func (f *fakeIndex) SuggestPrefix(prefix string) []string {
	var out []string
	for _, word := range f.Words() {
		if strings.HasPrefix(word, prefix) {
			out = append(out, word)
		}
	}
	return out
}

func (f *fakeIndex) Words() []string {
	seen := map[string]bool{}
	var out []string
	for _, name := range f.names {
		for _, token := range strings.Fields(strings.ToLower(name)) {
			if !seen[token] {
				seen[token] = true
				out = append(out, token)
			}
		}
	}
	return out
}

func sortRunes(pts []rune) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && pts[j] < pts[j-1]; j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}

func testNames() map[rune]string {
	return map[rune]string{
		0x2713:  "CHECK MARK",
		0x2714:  "HEAVY CHECK MARK",
		0x1F600: "GRINNING FACE",
		0x1F638: "GRINNING CAT FACE WITH SMILING EYES",
		0x1F63A: "SMILING CAT FACE WITH OPEN MOUTH",
	}
}

func TestResolveSingleWord(t *testing.T) {
	r := NewResolver(newFakeIndex(testNames()))
	got := r.Resolve("grinning")
	want := []rune{0x1F600, 0x1F638}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve(grinning) = %v, want %v", got, want)
	}
}

func TestResolveIntersectsExactTokens(t *testing.T) {
	r := NewResolver(newFakeIndex(testNames()))
	got := r.Resolve("cat smiling")
	want := []rune{0x1F638, 0x1F63A}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve(cat smiling) = %v, want %v", got, want)
	}
}

func TestResolveFallsBackToSubstring(t *testing.T) {
	// "grin" is not a whole token anywhere, so the second word has to
	// narrow by substring over the surviving names.
	r := NewResolver(newFakeIndex(testNames()))
	got := r.Resolve("face grin")
	want := []rune{0x1F600, 0x1F638}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve(face grin) = %v, want %v", got, want)
	}
}

func TestResolvePrefersIntersectionOverSubstring(t *testing.T) {
	// "mark" exists as an exact token; the substring path would keep the
	// same set here, but the exact path must be the one taken, which we
	// can only see through the result staying ascending and complete.
	r := NewResolver(newFakeIndex(testNames()))
	got := r.Resolve("check mark")
	want := []rune{0x2713, 0x2714}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve(check mark) = %v, want %v", got, want)
	}
}

func TestResolveEmptyQuery(t *testing.T) {
	r := NewResolver(newFakeIndex(testNames()))
	if got := r.Resolve(""); got != nil {
		t.Fatalf("Resolve(\"\") = %v, want nil", got)
	}
	if got := r.Resolve("   "); got != nil {
		t.Fatalf("Resolve(blank) = %v, want nil", got)
	}
}

func TestResolveUnknownWordYieldsNothing(t *testing.T) {
	r := NewResolver(newFakeIndex(testNames()))
	if got := r.Resolve("zzzz"); len(got) != 0 {
		t.Fatalf("Resolve(zzzz) = %v, want empty", got)
	}
	if got := r.Resolve("grinning zzzz"); len(got) != 0 {
		t.Fatalf("Resolve(grinning zzzz) = %v, want empty", got)
	}
}

func TestResolveMemoizesWholeQueries(t *testing.T) {
	idx := newFakeIndex(testNames())
	r := NewResolver(idx)

	first := r.Resolve("grinning cat")
	after := idx.lookups
	if after == 0 {
		t.Fatalf("first Resolve never hit the index")
	}
	second := r.Resolve("grinning cat")
	if idx.lookups != after {
		t.Fatalf("repeated Resolve hit the index again (%d lookups, want %d)", idx.lookups, after)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("memoized result %v differs from original %v", second, first)
	}
}

func TestSuggestCompletesPrefix(t *testing.T) {
	r := NewResolver(newFakeIndex(testNames()))
	if got := r.Suggest("grinning chec"); got != "check" {
		t.Fatalf("Suggest(grinning chec) = %q, want %q", got, "check")
	}
}

func TestSuggestFallsBackToClosestWord(t *testing.T) {
	r := NewResolver(newFakeIndex(testNames()))
	if got := r.Suggest("grnning"); got != "grinning" {
		t.Fatalf("Suggest(grnning) = %q, want %q", got, "grinning")
	}
}

func TestSuggestNothingForEmptyQuery(t *testing.T) {
	r := NewResolver(newFakeIndex(testNames()))
	if got := r.Suggest(""); got != "" {
		t.Fatalf("Suggest(\"\") = %q, want empty", got)
	}
}
