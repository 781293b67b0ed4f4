package cmdref

import "strings"

// Filter returns the categories matching query, in their original order.
//
// A category whose title or description contains the query keeps all of
// its commands. Otherwise it keeps only the commands whose name,
// description, usage, example or aliases contain the query, and is dropped
// when none do. Matching is a case-insensitive substring test; results are
// not ranked. An empty query returns categories unchanged.
func Filter(categories []*Category, query string) []*Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return categories
	}

	filtered := make([]*Category, 0, len(categories))
	for _, c := range categories {
		if contains(c.Title, q) || contains(c.Description, q) {
			filtered = append(filtered, c)
			continue
		}

		var commands []*Command
		for _, cmd := range c.Commands {
			if cmd.matches(q) {
				commands = append(commands, cmd)
			}
		}
		if len(commands) == 0 {
			continue
		}

		// Shallow copy keeps the ID so disclosure state still applies.
		narrowed := *c
		narrowed.Commands = commands
		filtered = append(filtered, &narrowed)
	}

	return filtered
}

// matches reports whether any text field of the command contains the
// lower-cased query q.
func (c *Command) matches(q string) bool {
	if c == nil {
		return false
	}
	if contains(c.Name, q) || contains(c.Description, q) || contains(c.Usage, q) || contains(c.Example, q) {
		return true
	}
	for _, alias := range c.Aliases {
		if contains(alias, q) {
			return true
		}
	}
	return false
}

func contains(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}
