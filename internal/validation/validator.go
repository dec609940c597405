package validation

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"ai-assessment/internal/domain"
)

// Character limits of the ai_assessments columns.
const (
	// MaxLabelLength bounds name and cohort after sanitizing.
	MaxLabelLength     = 100
	MaxTitleLength     = 200
	MaxUserAgentLength = 500
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSubmission checks every rule independently and returns all violations.
// An empty result means the submission may be persisted.
func (v *Validator) ValidateSubmission(sub *domain.Submission) domain.ValidationErrors {
	var errs domain.ValidationErrors

	errs = appendScoreErrors(errs, "total", sub.Total, domain.MaxTotalScore)

	if strings.TrimSpace(sub.Title) == "" {
		errs = append(errs, domain.NewMissingFieldError("title"))
	} else if utf8.RuneCountInString(sub.Title) > MaxTitleLength {
		errs = append(errs, tooLong("title", MaxTitleLength))
	}

	if !isStructured(sub.Answers) {
		errs = append(errs, domain.NewInvalidFormatError("answers", "must be an object or array"))
	}

	for _, d := range sub.Dimensions() {
		errs = appendScoreErrors(errs, d.Field, d.Value, domain.MaxDimensionScore)
	}

	if utf8.RuneCountInString(sub.Name) > MaxLabelLength {
		errs = append(errs, tooLong("name", MaxLabelLength))
	}
	if utf8.RuneCountInString(sub.Cohort) > MaxLabelLength {
		errs = append(errs, tooLong("cohort", MaxLabelLength))
	}

	return errs
}

// ValidateCohort validates a cohort taken from a path parameter.
func (v *Validator) ValidateCohort(cohort string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if cohort == "" {
		errs = append(errs, domain.NewMissingFieldError("cohort"))
	} else if utf8.RuneCountInString(cohort) > MaxLabelLength {
		errs = append(errs, tooLong("cohort", MaxLabelLength))
	}

	return errs
}

// Sanitize trims s and removes NUL and control characters other than \n and \t.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

func appendScoreErrors(errs domain.ValidationErrors, field string, value *float64, max int) domain.ValidationErrors {
	// Scores are stored in NUMBER(2) and NUMBER(1) columns, so fractions are rejected.
	switch {
	case value == nil:
		return append(errs, domain.NewMissingFieldError(field))
	case math.IsNaN(*value) || math.IsInf(*value, 0) || *value != math.Trunc(*value):
		return append(errs, domain.NewInvalidFormatError(field, "must be a whole number"))
	case *value < 0 || *value > float64(max):
		return append(errs, domain.NewOutOfRangeError(field, 0, max))
	}
	return errs
}

// isStructured reports whether raw holds a JSON object or array.
func isStructured(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	return trimmed[0] == '{' || trimmed[0] == '['
}

// Truncate cuts s to at most max characters.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func tooLong(field string, max int) domain.ValidationError {
	return domain.NewInvalidFormatError(field, fmt.Sprintf("must be at most %d characters", max))
}
