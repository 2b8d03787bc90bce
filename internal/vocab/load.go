package vocab

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/Dharaneesh-S-S/resume-engine/internal/schemas"
)

// LoadError represents a failure to load a vocabulary file. It is fatal to
// startup: the engine must not serve analyses without a valid vocabulary.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary load failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary load failed for %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// File is the on-disk JSON vocabulary format.
type File struct {
	Skills []Entry `json:"skills" validate:"required,min=1,dive"`
}

// SchemaRelPath is the repo-relative path of the vocabulary JSON Schema.
const SchemaRelPath = "schemas/skill_vocabulary.schema.json"

// Load reads, validates, and builds a Vocabulary from a JSON file.
// The file is checked against the vocabulary JSON Schema when the schema
// file is resolvable, then against struct-level validation rules. Any
// failure is returned as a *LoadError.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	// Schema validation runs when the schema ships alongside the binary;
	// struct validation below covers installs without the schemas dir.
	if schemaPath := schemas.ResolveSchemaPath(SchemaRelPath); schemaPath != "" {
		if err := schemas.ValidateJSONBytes(schemaPath, data); err != nil {
			return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
		}
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse JSON", Cause: err}
	}

	if err := validator.New().Struct(&f); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid vocabulary entries", Cause: err}
	}

	v, err := New(f.Skills)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "inconsistent vocabulary", Cause: err}
	}
	return v, nil
}
