package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema constrains catalog documents before they are trusted.
// Every wine must carry a name and an origin, every style an id, and
// style/wine names must be non-empty so they can serve as keys.
const documentSchema = `{
  "type": "object",
  "required": ["styles"],
  "properties": {
    "version": {"type": "string"},
    "lastUpdated": {"type": "string"},
    "styles": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "name", "wines"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "color": {"type": "string"},
          "description": {"type": "string"},
          "wines": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name", "origin"],
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "origin": {"type": "string", "minLength": 1}
              }
            }
          }
        }
      }
    }
  }
}`

const schemaURL = "schema://catalog.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(documentSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add catalog schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// ValidateDocument checks raw catalog JSON against the document schema.
func ValidateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiled()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("catalog validation failed: %w", err)
	}
	return nil
}

// Parse validates raw catalog JSON and decodes it.
func Parse(raw []byte) (*Catalog, error) {
	if err := ValidateDocument(raw); err != nil {
		return nil, err
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &c, nil
}
