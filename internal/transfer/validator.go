// Package transfer implements JSON export and import of a user's diary
// data. Import payloads are schema-validated before any row is written.
package transfer

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/kaptinlin/jsonschema"
)

//go:embed import_schema.json
var importSchemaJSON []byte

// ValidateImport validates a decoded import document against the embedded
// JSON Schema.
func ValidateImport(document map[string]interface{}) error {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(importSchemaJSON)
	if err != nil {
		return fmt.Errorf("failed to compile import schema: %w", err)
	}

	result := schema.Validate(document)
	if !result.IsValid() {
		// Collect all validation errors in a stable order
		var errorMessages []string
		for field, evalErr := range result.Errors {
			errorMessages = append(errorMessages, fmt.Sprintf("%s: %s", field, evalErr.Error()))
		}
		sort.Strings(errorMessages)
		return fmt.Errorf("import validation failed: %s", strings.Join(errorMessages, "; "))
	}

	return nil
}
