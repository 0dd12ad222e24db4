package validation

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against registered JSON schemas
type SchemaValidator interface {
	Register(name string, schema []byte) error
	ValidateBytes(data []byte, name string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// Register compiles schema under name. Registering the same name twice is a
// no-op so embedded schemas can be registered lazily.
func (v *validator) Register(name string, schema []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[name]; ok {
		return nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return fmt.Errorf("failed to parse schema %s: %w", name, err)
	}

	if err := v.compiler.AddResource(name, doc); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = compiled
	return nil
}

// ValidateBytes validates JSON data bytes against the schema registered as name
func (v *validator) ValidateBytes(data []byte, name string) error {
	v.mu.Lock()
	schema, ok := v.schemas[name]
	v.mu.Unlock()
	if !ok {
		return fmt.Errorf("schema %s is not registered", name)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError flattens a validation error tree into one line per cause
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errs []string
		collectErrors(validationErr, &errs)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

func collectErrors(err *jsonschema.ValidationError, errs *[]string) {
	if msg := formatError(err); msg != "" {
		*errs = append(*errs, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, errs)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(keywordPath, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
