// Package cstschema validates the JSON form of a vb6parse.Cst's serializable
// tree against a fixed JSON Schema describing the node shape: every node
// has a non-empty "kind" string and never carries both "text" and
// "children". The schema does not check "kind" against the CST Kind or
// token Kind spellings.
//
// A santhosh-tekuri/jsonschema/v5 schema is compiled once and the compiled
// *jsonschema.Schema reused across calls. This module has exactly one
// schema shape (recursive tree node), so there is no schema cache keyed
// by content hash — just a package-level compiled singleton.
package cstschema

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	vb6parse "github.com/scriptandcompile/vb6parse-sub002"
)

// schemaDocument is the fixed JSON Schema for a SerializableNode: a "kind"
// string, an optional "text" string (leaves), and an optional recursive
// "children" array (branches). It does not enumerate every Kind spelling —
// doing so would require regenerating the schema whenever the Kind
// enumerations change — but it does pin the node's *shape*, which is the
// property every snapshot-testing consumer actually depends on: cstfmt and
// DebugYAML output must always be "kind + (text or children, never both)";
// an empty branch carries neither.
const schemaDocument = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": "https://vb6parse.invalid/schema/cst-node.json",
  "title": "vb6parse CST serializable node",
  "type": "object",
  "required": ["kind"],
  "additionalProperties": false,
  "properties": {
    "kind": {"type": "string", "minLength": 1},
    "text": {"type": "string"},
    "children": {
      "type": "array",
      "items": {"$ref": "https://vb6parse.invalid/schema/cst-node.json"}
    }
  },
  "not": {
    "required": ["text", "children"]
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft7
		if err := compiler.AddResource("https://vb6parse.invalid/schema/cst-node.json", strings.NewReader(schemaDocument)); err != nil {
			compileErr = fmt.Errorf("cstschema: add schema resource: %w", err)
			return
		}
		s, err := compiler.Compile("https://vb6parse.invalid/schema/cst-node.json")
		if err != nil {
			compileErr = fmt.Errorf("cstschema: compile schema: %w", err)
			return
		}
		compiled = s
	})
	return compiled, compileErr
}

// Validate checks tree's serializable form against the fixed node-shape
// schema. A nil error means every node in the tree is shaped as either a
// leaf ("kind"+"text") or a branch ("kind"+"children", or "kind" alone for
// an empty branch), never both.
func Validate(tree *vb6parse.Cst) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(tree.ToSerializable())
	if err != nil {
		return fmt.Errorf("cstschema: marshal tree: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("cstschema: unmarshal tree: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("cstschema: tree failed validation: %w", err)
	}
	return nil
}
