package cmdref

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize converts a raw catalog into an ordered list of categories:
// every prefix category in document order, followed by every slash
// category in document order.
//
// Returns EMALFORMED if a section is missing, a category has no commands
// list, or a commands list holds a nil entry. Normalization is atomic: on error no categories are returned.
func Normalize(doc *RawCatalog) ([]*Category, error) {
	if doc == nil {
		return nil, Errorf(EMALFORMED, "catalog document required")
	}

	sections := []struct {
		key     string
		style   Style
		section *RawSection
	}{
		{SectionPrefix, StylePrefix, doc.PrefixCommands},
		{SectionSlash, StyleSlash, doc.SlashCommands},
	}

	categories := make([]*Category, 0, doc.CategoryCount())
	ids := newIDSet()

	for _, s := range sections {
		if s.section == nil {
			return nil, Errorf(EMALFORMED, "%s section required", s.key)
		}
		for _, raw := range s.section.Categories {
			if raw == nil || raw.Commands == nil {
				name := ""
				if raw != nil {
					name = raw.Name
				}
				return nil, Errorf(EMALFORMED, "%s.%q: commands required", s.key, name)
			}
			if i := slices.Index(raw.Commands, nil); i >= 0 {
				return nil, Errorf(EMALFORMED, "%s.%q: command %d required", s.key, raw.Name, i)
			}
			categories = append(categories, &Category{
				ID:          ids.claim(string(s.style) + "-" + Slugify(raw.Name)),
				Title:       raw.Name + " (" + s.style.Label() + " Commands)",
				Style:       s.style,
				Icon:        ResolveIcon(raw.Icon, s.style),
				Description: raw.Description,
				Commands:    raw.Commands,
			})
		}
	}

	return categories, nil
}

// Slugify lower-cases name and collapses each run of white space into a
// single hyphen. No other characters are changed.
func Slugify(name string) string {
	var sb strings.Builder
	inSpace := false

	for _, r := range cases.Lower(language.Und).String(name) {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			if !inSpace {
				sb.WriteRune('-')
				inSpace = true
			}
			continue
		}
		sb.WriteRune(r)
		inSpace = false
	}

	return sb.String()
}

// idSet hands out unique category IDs. A repeated ID gets a numeric
// suffix (-1, -2, ...) in order of appearance.
type idSet struct {
	used   map[string]bool
	counts map[string]int
}

func newIDSet() *idSet {
	return &idSet{
		used:   make(map[string]bool),
		counts: make(map[string]int),
	}
}

func (s *idSet) claim(base string) string {
	id := base
	for s.used[id] {
		s.counts[base]++
		id = base + "-" + strconv.Itoa(s.counts[base])
	}
	s.used[id] = true
	return id
}
