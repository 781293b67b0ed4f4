package cmdref

import (
	"fmt"
	"strings"
)

// Disclosure markers.
const (
	MarkerExpanded  = "▼"
	MarkerCollapsed = "▶"
)

// FormatCategories formats categories as plain text. Every category shows
// its header and description; only categories expanded in d list their
// commands. Categories are separated by blank lines.
func FormatCategories(categories []*Category, d Disclosure) string {
	if len(categories) == 0 {
		return ""
	}

	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		var sb strings.Builder

		expanded := d.IsExpanded(c.ID)
		marker := MarkerCollapsed
		if expanded {
			marker = MarkerExpanded
		}
		fmt.Fprintf(&sb, "%s %s %s - %s\n", marker, c.Icon.Glyph(), c.Title, FormatCommandCount(len(c.Commands)))
		if c.Description != "" {
			sb.WriteString("  " + c.Description + "\n")
		}

		if expanded {
			for _, cmd := range c.Commands {
				sb.WriteString("\n")
				sb.WriteString(FormatCommand(cmd, "  "))
			}
		}

		parts = append(parts, strings.TrimSuffix(sb.String(), "\n"))
	}

	return strings.Join(parts, "\n\n")
}

// FormatCommand formats a single command's details, each line prefixed
// with indent. Aliases are listed only when present.
func FormatCommand(cmd *Command, indent string) string {
	var sb strings.Builder

	sb.WriteString(indent + cmd.Name + "\n")
	if cmd.Description != "" {
		sb.WriteString(indent + "  " + cmd.Description + "\n")
	}
	sb.WriteString(indent + "  Usage:   " + cmd.Usage + "\n")
	sb.WriteString(indent + "  Example: " + cmd.Example + "\n")
	if len(cmd.Aliases) > 0 {
		sb.WriteString(indent + "  Aliases: " + strings.Join(cmd.Aliases, ", ") + "\n")
	}

	return sb.String()
}

// FormatCommandCount formats a command count for category headers.
func FormatCommandCount(n int) string {
	if n == 1 {
		return "1 command"
	}
	return fmt.Sprintf("%d commands", n)
}
