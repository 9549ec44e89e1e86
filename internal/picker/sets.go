package picker

// defaultSet seeds the recent-choice history on first run: curly quotes and
// guillemets, a handful of emoji, typographic marks, arrows and math signs,
// currency and Latin letters with diacritics. Its length also fixes the
// history capacity.
var defaultSet = []rune("‘’“”‹›«»‚„" +
	"😀😛😇😈😉😍😎😮👍👎" +
	"—–§¶†‡©®™" +
	"→⇒•·°±−×÷¼½½¾" +
	"…µ¢£€¿¡¨´¸ˆ˜" +
	"ÀÁÂÃÄÅÆÇÈÉÊË" +
	"ÌÍÎÏÐÑÒÓÔÕÖØ" +
	"ŒŠÙÚÛÜÝŸÞßàá" +
	"âãäåæçèéêëìí" +
	"îïðñòóôõöøœš" +
	"ùúûüýÿþªºαΩ∞")

// DefaultSet returns a copy of the built-in seed characters.
func DefaultSet() []rune {
	return append([]rune(nil), defaultSet...)
}

const (
	emoticonFirst = 0x1F600
	emoticonLast  = 0x1F64F
)

// EmoticonRange returns the Unicode emoticon block in codepoint order.
func EmoticonRange() []rune {
	out := make([]rune, 0, emoticonLast-emoticonFirst+1)
	for cp := rune(emoticonFirst); cp <= emoticonLast; cp++ {
		out = append(out, cp)
	}
	return out
}

// Excluded reports whether cp may never be emitted as a choice: C0 controls
// and space, DEL, the C1 range, and surrogate halves.
func Excluded(cp rune) bool {
	switch {
	case cp <= 0x20:
		return true
	case cp == 0x7F:
		return true
	case cp >= 0x80 && cp <= 0x9F:
		return true
	case cp >= 0xD800 && cp <= 0xDFFF:
		return true
	}
	return false
}
