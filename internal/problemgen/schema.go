package problemgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON schema definition.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "generated-question".
	Name string

	// Definition is the JSON Schema document as a Go value.
	Definition map[string]any
}

var checkerDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"correct": map[string]any{"type": "string", "minLength": 1},
		"accept": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string", "enum": []any{"numeric", "fraction", "scientific"}},
			"uniqueItems": true,
		},
		"tolerance":  map[string]any{"type": "number", "minimum": 0},
		"alternates": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"rule":       map[string]any{"type": "string"},
	},
	"required":             []any{"correct", "tolerance"},
	"additionalProperties": false,
}

// QuestionSchema describes the JSON encoding of a Question.
var QuestionSchema = &Schema{
	Name: "generated-question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":                map[string]any{"type": "string", "minLength": 1},
			"topicId":           map[string]any{"type": "string", "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"},
			"question":          map[string]any{"type": "string", "minLength": 1},
			"answer":            map[string]any{"type": "string", "minLength": 1},
			"difficulty":        map[string]any{"type": "integer", "minimum": 1},
			"checker":           checkerDefinition,
			"acceptableAnswers": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"explanation":       map[string]any{"type": "string"},
			"diagram":           map[string]any{},
		},
		"required":             []any{"id", "topicId", "question", "answer", "difficulty"},
		"additionalProperties": false,
	},
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// compiledQuestionSchema compiles QuestionSchema once.
func compiledQuestionSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schemaCompiled, schemaErr = compileSchema(QuestionSchema)
	})
	return schemaCompiled, schemaErr
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not Go maps with
	// typed slices. Round-trip through JSON to get a clean any.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}

// ValidateJSON checks raw against QuestionSchema.
func ValidateJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := compiledQuestionSchema()
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", QuestionSchema.Name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// SchemaValidator checks that the JSON encoding of a question satisfies
// QuestionSchema.
type SchemaValidator struct{}

func (v *SchemaValidator) Name() string { return "schema" }

func (v *SchemaValidator) Validate(q *Question) *ValidationError {
	raw, err := json.Marshal(q)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if err := ValidateJSON(raw); err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	return nil
}
