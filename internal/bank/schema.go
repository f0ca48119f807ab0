package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the JSON Schema every bank file must satisfy.
// Subcategories may not nest, which caps the hierarchy at two levels.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "categories", "questions"],
  "properties": {
    "version": {"type": "string", "pattern": "^v[0-9]"},
    "categories": {
      "type": "array",
      "minItems": 1,
      "items": {"$ref": "#/$defs/category"}
    },
    "questions": {
      "type": "array",
      "items": {"$ref": "#/$defs/question"}
    }
  },
  "$defs": {
    "leaf": {
      "type": "object",
      "required": ["id", "name"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "name": {"type": "string", "minLength": 1},
        "description": {"type": "string"}
      },
      "additionalProperties": false
    },
    "category": {
      "type": "object",
      "required": ["id", "name"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "name": {"type": "string", "minLength": 1},
        "description": {"type": "string"},
        "subcategories": {
          "type": "array",
          "items": {"$ref": "#/$defs/leaf"}
        }
      },
      "additionalProperties": false
    },
    "question": {
      "type": "object",
      "required": ["id", "category", "question", "correctAnswer", "wrongAnswers"],
      "properties": {
        "id": {"type": "integer", "minimum": 1},
        "category": {"type": "string", "minLength": 1},
        "question": {"type": "string", "minLength": 1},
        "correctAnswer": {"type": "string", "minLength": 1},
        "wrongAnswers": {
          "type": "array",
          "minItems": 1,
          "items": {"type": "string"}
        }
      },
      "additionalProperties": false
    }
  }
}`

const schemaURL = "schema://mathquiz/bank.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(documentSchema)))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateSchema checks a decoded document against documentSchema.
// raw is any value produced by a YAML or JSON decoder.
func validateSchema(raw any) error {
	compiled, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	// Round-trip through JSON so YAML scalars reach the validator as
	// json.Number values.
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	if err := compiled.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
