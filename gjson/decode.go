// Package gjson decodes catalog documents with github.com/tidwall/gjson.
//
// gjson walks objects in document order, which the catalog relies on:
// categories are displayed in the order the publisher wrote them.
package gjson

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/cmdref"
	"github.com/tidwall/gjson"
)

// Decode parses a catalog document.
//
// Invalid JSON or a root that is not an object is reported as
// EUNAVAILABLE. Structural problems inside the document are not errors
// here: a section that is missing or not an object decodes to nil, and a
// commands field that is missing or not an array decodes to nil Commands,
// leaving cmdref.Normalize to reject them. A leading byte order mark is
// ignored; the digest covers the bytes as received.
func Decode(data []byte) (*cmdref.RawCatalog, error) {
	body := cmdref.TrimBOM(data)
	if !gjson.ValidBytes(body) {
		return nil, cmdref.Errorf(cmdref.EUNAVAILABLE, "catalog is not valid structured data")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, cmdref.Errorf(cmdref.EUNAVAILABLE, "catalog is not valid structured data: root must be an object")
	}

	return &cmdref.RawCatalog{
		PrefixCommands: decodeSection(root.Get(cmdref.SectionPrefix)),
		SlashCommands:  decodeSection(root.Get(cmdref.SectionSlash)),
		Digest:         fmt.Sprintf("%x", xxhash.Sum64(data)),
	}, nil
}

func decodeSection(v gjson.Result) *cmdref.RawSection {
	if !v.IsObject() {
		return nil
	}

	section := &cmdref.RawSection{Categories: []*cmdref.RawCategory{}}
	v.ForEach(func(key, value gjson.Result) bool {
		section.Categories = append(section.Categories, decodeCategory(key.String(), value))
		return true
	})
	return section
}

func decodeCategory(name string, v gjson.Result) *cmdref.RawCategory {
	c := &cmdref.RawCategory{Name: name}
	if !v.IsObject() {
		return c
	}

	c.Description = str(v.Get("description"))
	c.Icon = str(v.Get("icon"))

	commands := v.Get("commands")
	if !commands.IsArray() {
		return c
	}
	c.Commands = []*cmdref.Command{}
	commands.ForEach(func(_, value gjson.Result) bool {
		c.Commands = append(c.Commands, decodeCommand(value))
		return true
	})
	return c
}

func decodeCommand(v gjson.Result) *cmdref.Command {
	cmd := &cmdref.Command{
		Name:        str(v.Get("name")),
		Description: str(v.Get("description")),
		Usage:       str(v.Get("usage")),
		Example:     str(v.Get("example")),
	}

	if aliases := v.Get("aliases"); aliases.IsArray() {
		cmd.Aliases = []string{}
		aliases.ForEach(func(_, value gjson.Result) bool {
			if value.Type == gjson.String {
				cmd.Aliases = append(cmd.Aliases, value.Str)
			}
			return true
		})
	}

	return cmd
}

// str returns the value of a string field, or "" for any other type.
func str(v gjson.Result) string {
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}
