package cmdref

// Style is the invocation style of a category's commands.
type Style string

// Style constants.
const (
	StylePrefix Style = "prefix"
	StyleSlash  Style = "slash"
)

// Label returns the display label of the style.
func (s Style) Label() string {
	switch s {
	case StylePrefix:
		return "Prefix"
	case StyleSlash:
		return "Slash"
	default:
		return string(s)
	}
}

// Category is a normalized command category. Categories are immutable once
// built; Commands is shared with the raw document.
type Category struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Style       Style      `json:"style"`
	Icon        Icon       `json:"icon"`
	Description string     `json:"description"`
	Commands    []*Command `json:"commands"`
}
