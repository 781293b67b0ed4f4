// Package jsonschema validates catalog documents against an embedded JSON
// Schema using github.com/santhosh-tekuri/jsonschema/v5.
package jsonschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fwojciec/cmdref"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed catalog.schema.json
var catalogSchema []byte

const schemaURL = "catalog.schema.json"

// Ensure Validator implements cmdref.Validator at compile time.
var _ cmdref.Validator = (*Validator)(nil)

// Validator checks catalog documents against the catalog schema.
// It is safe for concurrent use.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded catalog schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(schemaURL, bytes.NewReader(catalogSchema)); err != nil {
		return nil, fmt.Errorf("add catalog schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate returns nil when data is a well-formed catalog. Otherwise it
// returns EUNAVAILABLE for data that is not JSON, or EMALFORMED listing
// every violation as "<location>: <message>" on its own line, sorted by
// location. A leading byte order mark is ignored.
func (v *Validator) Validate(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(cmdref.TrimBOM(data)))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return cmdref.Errorf(cmdref.EUNAVAILABLE, "catalog is not valid structured data: %v", err)
	}
	if dec.More() {
		return cmdref.Errorf(cmdref.EUNAVAILABLE, "catalog is not valid structured data: trailing data after document")
	}

	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	violations := leaves(verr, nil)
	slices.Sort(violations)
	violations = slices.Compact(violations)
	return cmdref.Errorf(cmdref.EMALFORMED, "%s", strings.Join(violations, "\n"))
}

// leaves collects the innermost causes of a validation error.
func leaves(e *jsonschema.ValidationError, out []string) []string {
	if len(e.Causes) == 0 {
		loc := e.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return append(out, loc+": "+e.Message)
	}
	for _, c := range e.Causes {
		out = leaves(c, out)
	}
	return out
}
