package route

import (
	"fmt"
	"strings"
)

// Validator checks a route table for registrations that can never
// match or that silently collide. Matching itself tolerates all of
// these; the validator exists so tools (wayfind check) and tests can
// reject fragile tables up front.
type Validator struct {
	patterns []*Pattern
	errors   []ValidationError
}

// ValidationError is one route table defect.
type ValidationError struct {
	// Type is the error category.
	Type ValidationErrorType

	// Message is the human-readable error message.
	Message string

	// Pattern is the offending pattern string.
	Pattern string

	// Details contains additional error-specific information.
	Details string
}

func (e ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ValidationErrorType categorizes validation errors.
type ValidationErrorType string

const (
	// ErrorDuplicatePattern indicates two registrations share the same
	// matching shape. Capture names don't affect matching, so
	// "/u/:id" and "/u/:uid" collide; the later one only wins ties.
	ErrorDuplicatePattern ValidationErrorType = "DUPLICATE_PATTERN"

	// ErrorEmptyCaptureName indicates a ":" segment with no name.
	ErrorEmptyCaptureName ValidationErrorType = "EMPTY_CAPTURE_NAME"

	// ErrorRepeatedCaptureName indicates the same capture name used
	// twice within one pattern; the later binding silently wins.
	ErrorRepeatedCaptureName ValidationErrorType = "REPEATED_CAPTURE_NAME"
)

// MultiValidationError wraps multiple validation errors.
type MultiValidationError struct {
	Errors []ValidationError
}

func (e *MultiValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d route validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// NewValidator creates a validator over the given pattern strings.
func NewValidator(patterns []string) *Validator {
	compiled := make([]*Pattern, len(patterns))
	for i, p := range patterns {
		compiled[i] = Compile(p)
	}
	return &Validator{patterns: compiled}
}

// Validate checks all patterns. Returns nil when the table is clean,
// or a *MultiValidationError carrying every defect found.
func (v *Validator) Validate() error {
	v.errors = nil

	v.validateDuplicates()
	v.validateCaptureNames()

	if len(v.errors) > 0 {
		return &MultiValidationError{Errors: v.errors}
	}
	return nil
}

// validateDuplicates flags patterns sharing a matching shape.
func (v *Validator) validateDuplicates() {
	firstByShape := make(map[string]*Pattern)

	for _, p := range v.patterns {
		shape := p.shapeKey()
		if first, ok := firstByShape[shape]; ok {
			v.errors = append(v.errors, ValidationError{
				Type:    ErrorDuplicatePattern,
				Message: fmt.Sprintf("pattern %q matches the same locations as %q", p.Raw, first.Raw),
				Pattern: p.Raw,
				Details: fmt.Sprintf("first registered as %q", first.Raw),
			})
			continue
		}
		firstByShape[shape] = p
	}
}

// validateCaptureNames flags empty and repeated capture names.
func (v *Validator) validateCaptureNames() {
	for _, p := range v.patterns {
		seen := make(map[string]bool)
		for _, seg := range p.Segments {
			if seg.Kind != KindParam {
				continue
			}
			if seg.Value == "" {
				v.errors = append(v.errors, ValidationError{
					Type:    ErrorEmptyCaptureName,
					Message: fmt.Sprintf("pattern %q has an unnamed capture at segment %d", p.Raw, seg.Index),
					Pattern: p.Raw,
				})
				continue
			}
			if seen[seg.Value] {
				v.errors = append(v.errors, ValidationError{
					Type:    ErrorRepeatedCaptureName,
					Message: fmt.Sprintf("pattern %q binds %q more than once", p.Raw, seg.Value),
					Pattern: p.Raw,
				})
			}
			seen[seg.Value] = true
		}
	}
}
