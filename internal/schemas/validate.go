// Package schemas enforces the strict JSON Schema contracts for every record
// a pipeline stage produces. Each record type is validated in its marshaled
// JSON form against an embedded draft-07 document with
// additionalProperties: false, so wrong, missing, or extra keys all fail.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/jobmatch/internal/types"
)

//go:embed documents/*.schema.json
var documents embed.FS

var (
	resumeSchema = mustLoad("documents/resume.schema.json")
	jobSchema    = mustLoad("documents/job.schema.json")
	finalSchema  = mustLoad("documents/final.schema.json")
)

func mustLoad(path string) *gojsonschema.Schema {
	raw, err := documents.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("schemas: missing embedded document %s: %v", path, err))
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("schemas: invalid embedded document %s: %v", path, err))
	}
	return schema
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Record string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(ve.Record)
	sb.WriteString(" validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateResume checks a marshaled ResumeRecord against the resume schema.
func ValidateResume(doc []byte) error {
	return validate(resumeSchema, "resume", doc)
}

// ValidateResumeRecord marshals and validates a ResumeRecord.
func ValidateResumeRecord(rec *types.ResumeRecord) error {
	return marshalAndValidate(resumeSchema, "resume", rec)
}

// ValidateJobRecord marshals and validates a JobRecord.
func ValidateJobRecord(rec *types.JobRecord) error {
	return marshalAndValidate(jobSchema, "job", rec)
}

// ValidateFinalRecord marshals and validates a FinalRecord.
func ValidateFinalRecord(rec *types.FinalRecord) error {
	return marshalAndValidate(finalSchema, "final output", rec)
}

func marshalAndValidate(schema *gojsonschema.Schema, record string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", record, err)
	}
	return validate(schema, record, doc)
}

func validate(schema *gojsonschema.Schema, record string, doc []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &ValidationError{
			Record: record,
			Errors: []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Record: record,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// StripDebug returns a copy of the record without its _debug diagnostics.
// Idempotent: stripping a record with no diagnostics returns an equal copy.
func StripDebug(rec *types.FinalRecord) *types.FinalRecord {
	out := *rec
	out.Debug = nil
	return &out
}
