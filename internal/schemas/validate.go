// Package schemas validates exported analysis artifacts against their
// JSON Schemas. The schemas are embedded so validation works regardless of
// working directory.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed fit_analysis.schema.json
var fitAnalysisSchema string

//go:embed tailoring_plan.schema.json
var tailoringPlanSchema string

// ValidationError is a schema validation failure with per-field detail.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateFitAnalysis validates a serialized FitAnalysis document.
func ValidateFitAnalysis(doc []byte) error {
	return validate(fitAnalysisSchema, doc)
}

// ValidateTailoringPlan validates a serialized TailoringPlan document.
func ValidateTailoringPlan(doc []byte) error {
	return validate(tailoringPlanSchema, doc)
}

// ValidateValue marshals a value and validates it against the schema for
// its artifact kind ("fit" or "plan").
func ValidateValue(kind string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s artifact: %w", kind, err)
	}
	switch kind {
	case "fit":
		return ValidateFitAnalysis(doc)
	case "plan":
		return ValidateTailoringPlan(doc)
	default:
		return fmt.Errorf("no schema for artifact kind %q", kind)
	}
}

func validate(schema string, doc []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
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
