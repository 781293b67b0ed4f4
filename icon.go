package cmdref

import "strings"

// Icon is the symbol displayed next to a category.
type Icon int

// Icon constants.
const (
	IconHash Icon = iota
	IconBot
	IconSettings
	IconHelpCircle
	IconMessageCircle
	IconUsers
	IconZap
)

var iconNames = map[Icon]string{
	IconHash:          "hash",
	IconBot:           "bot",
	IconSettings:      "settings",
	IconHelpCircle:    "help-circle",
	IconMessageCircle: "message-circle",
	IconUsers:         "users",
	IconZap:           "zap",
}

var iconGlyphs = map[Icon]string{
	IconHash:          "#",
	IconBot:           "◈",
	IconSettings:      "⚙",
	IconHelpCircle:    "?",
	IconMessageCircle: "✉",
	IconUsers:         "☺",
	IconZap:           "↯",
}

// iconHints are the hint strings recognized in catalog documents.
// IconBot has no hint and is only used as a fallback.
var iconHints = map[string]Icon{
	"settings":       IconSettings,
	"hash":           IconHash,
	"help-circle":    IconHelpCircle,
	"message-circle": IconMessageCircle,
	"users":          IconUsers,
	"zap":            IconZap,
}

// String returns the icon name.
func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return "unknown"
}

// Glyph returns a single-cell terminal symbol for the icon.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return " "
}

// MarshalText encodes the icon as its name.
func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// ResolveIcon maps an icon hint to an Icon. Matching is case-insensitive
// and exact. Unrecognized hints fall back to IconHash for prefix categories
// and IconBot otherwise.
func ResolveIcon(hint string, style Style) Icon {
	if icon, ok := iconHints[strings.ToLower(hint)]; ok {
		return icon
	}
	if style == StylePrefix {
		return IconHash
	}
	return IconBot
}
