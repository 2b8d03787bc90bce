package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"aliases": {"type": "array", "items": {"type": "string"}}
	},
	"additionalProperties": false
}`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateJSON_Valid(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTestFile(t, dir, "schema.json", testSchema)
	jsonPath := writeTestFile(t, dir, "doc.json", `{"name": "Go", "aliases": ["golang"]}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTestFile(t, dir, "schema.json", testSchema)
	jsonPath := writeTestFile(t, dir, "doc.json", `{"aliases": ["golang"]}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSON_WrongType(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTestFile(t, dir, "schema.json", testSchema)
	jsonPath := writeTestFile(t, dir, "doc.json", `{"name": 42}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeTestFile(t, dir, "doc.json", `{"name": "Go"}`)

	err := ValidateJSON(filepath.Join(dir, "absent_schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTestFile(t, dir, "schema.json", testSchema)

	err := ValidateJSON(schemaPath, filepath.Join(dir, "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONBytes_Valid(t *testing.T) {
	schemaPath := writeTestFile(t, t.TempDir(), "schema.json", testSchema)

	assert.NoError(t, ValidateJSONBytes(schemaPath, []byte(`{"name": "Go"}`)))
}

func TestValidateJSONBytes_UnknownField(t *testing.T) {
	schemaPath := writeTestFile(t, t.TempDir(), "schema.json", testSchema)

	err := ValidateJSONBytes(schemaPath, []byte(`{"name": "Go", "extra": true}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONBytes_MalformedDocument(t *testing.T) {
	schemaPath := writeTestFile(t, t.TempDir(), "schema.json", testSchema)

	err := ValidateJSONBytes(schemaPath, []byte(`{ not json }`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONBytes_NestedFieldPath(t *testing.T) {
	nested := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["skills"],
		"properties": {
			"skills": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["name"],
					"properties": {"name": {"type": "string"}}
				}
			}
		}
	}`
	schemaPath := writeTestFile(t, t.TempDir(), "schema.json", nested)

	err := ValidateJSONBytes(schemaPath, []byte(`{"skills": [{}]}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Errors[0].Field, "skills")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "skills.0", Message: "must be an object"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "name")
	assert.Contains(t, msg, "skills.0")
}

func TestResolveSchemaPath_FindsRepoSchema(t *testing.T) {
	// Runs from internal/schemas, so the repo schema is two levels up.
	path := ResolveSchemaPath(filepath.Join("schemas", "skill_vocabulary.schema.json"))

	require.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))
}

func TestResolveSchemaPath_Absent(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "no_such.schema.json")))
}
