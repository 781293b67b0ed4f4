// Package cmdref provides a terminal reference for bot command catalogs.
// It loads a two-section (prefix/slash) catalog document, normalizes it into
// an ordered list of categories, and lets a user browse, filter and expand
// them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, gjson/, bubbletea/).
package cmdref
