package cmdref

import (
	"bytes"
	"context"
)

// CatalogPath is the well-known path of the catalog resource relative to
// the site root.
const CatalogPath = "bot-commands.json"

// Section keys of the catalog document.
const (
	SectionPrefix = "prefix_commands"
	SectionSlash  = "slash_commands"
)

// bom is the UTF-8 byte order mark some editors write at the start of a file.
var bom = []byte("\xEF\xBB\xBF")

// TrimBOM returns data without a leading UTF-8 byte order mark.
func TrimBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, bom)
}

// RawCatalog is the catalog document as published, before normalization.
// A nil section means the document did not contain that key.
type RawCatalog struct {
	PrefixCommands *RawSection
	SlashCommands  *RawSection

	// Digest is a hash of the source bytes, for display only.
	Digest string
}

// CategoryCount returns the number of categories across both sections.
func (c *RawCatalog) CategoryCount() int {
	if c == nil {
		return 0
	}
	return c.PrefixCommands.Len() + c.SlashCommands.Len()
}

// RawSection is one top-level section of the catalog: category name to
// category, in document order. Names are not guaranteed to be unique.
type RawSection struct {
	Categories []*RawCategory
}

// Len returns the number of categories in the section.
func (s *RawSection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Categories)
}

// RawCategory is a named group of commands as it appears in the document.
type RawCategory struct {
	Name        string
	Description string
	Icon        string

	// Commands is nil when the document omits the commands list.
	Commands []*Command
}

// Command is a single bot command. Only Name is expected to be non-empty.
type Command struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Aliases     []string `json:"aliases"`
	Usage       string   `json:"usage"`
	Example     string   `json:"example"`
}

// Fetcher retrieves the raw bytes of a catalog resource.
type Fetcher interface {
	// Fetch performs one retrieval of the resource.
	// The context controls cancellation; timeouts belong to the transport.
	Fetch(ctx context.Context) ([]byte, error)

	// Source describes where the resource lives (URL or file path).
	Source() string
}

// Loader retrieves and parses the catalog document.
type Loader interface {
	// Load performs one retrieval and parse of the catalog. It never
	// retries and never caches; every call is a fresh attempt.
	// Returns EUNAVAILABLE if the resource cannot be fetched or is not
	// valid structured data.
	Load(ctx context.Context) (*RawCatalog, error)
}

// Validator checks a raw catalog document against the expected structure
// without decoding it.
type Validator interface {
	// Validate returns EMALFORMED listing every structural violation, or
	// EUNAVAILABLE if data is not valid structured data.
	Validate(data []byte) error
}
