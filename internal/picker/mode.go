// Package picker holds the session-independent pieces of the character
// picker: input modes, the built-in character sets, the recent-choice
// history, and the hinted candidate table.
package picker

// Mode selects how typed input is interpreted and which candidates fill the
// table. The zero value is ModeHex.
type Mode int

const (
	// ModeHex interprets input as a hexadecimal codepoint (or an r-prefixed
	// hint into the recent list) and shows recently chosen characters.
	ModeHex Mode = iota
	// ModeName searches characters by words from their Unicode names.
	ModeName
	// ModeEmoticon shows the emoticon block, selected by hint.
	ModeEmoticon
)

// String returns the persisted wire form of the mode.
func (m Mode) String() string {
	switch m {
	case ModeName:
		return "NAME"
	case ModeEmoticon:
		return "EMOTICONS"
	default:
		return "HEX"
	}
}

// Label returns the mode's human title for the mode-switch bar.
func (m Mode) Label() string {
	switch m {
	case ModeName:
		return "Name"
	case ModeEmoticon:
		return "Emoji"
	default:
		return "Code"
	}
}

// ParseMode maps a persisted mode string back to a Mode. Unknown or empty
// strings, including values written by other versions, fall back to ModeHex
// rather than failing.
func ParseMode(s string) Mode {
	switch s {
	case "NAME":
		return ModeName
	case "EMOTICONS":
		return ModeEmoticon
	default:
		return ModeHex
	}
}
