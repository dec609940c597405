package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"ai-assessment/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func validSubmission() *domain.Submission {
	return &domain.Submission{
		Name:    "alice",
		Cohort:  "class-a",
		Title:   "AI 探索者（The Explorer）",
		Total:   f(12),
		D1:      f(2),
		D2:      f(3),
		D3:      f(2),
		D4:      f(3),
		D5:      f(2),
		Answers: json.RawMessage(`[{"questionId":1,"selectedOption":0,"value":3}]`),
	}
}

func fields(errs domain.ValidationErrors) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidateSubmission_WellFormed(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateSubmission(validSubmission()))

	sub := validSubmission()
	sub.Answers = json.RawMessage(`{"1":0}`)
	assert.Empty(t, v.ValidateSubmission(sub))
}

func TestValidateSubmission_CollectsAllViolations(t *testing.T) {
	v := NewValidator()
	sub := &domain.Submission{
		Total:   f(31),
		Title:   "",
		Answers: json.RawMessage(`null`),
		D1:      f(7),
	}

	errs := v.ValidateSubmission(sub)

	require.GreaterOrEqual(t, len(errs), 4)
	got := fields(errs)
	for _, field := range []string{"total", "title", "answers", "d1"} {
		assert.Contains(t, got, field)
	}
}

func TestValidateSubmission_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *domain.Submission)
		field  string
		code   domain.ErrorCode
	}{
		{"missing total", func(s *domain.Submission) { s.Total = nil }, "total", domain.CodeMissingField},
		{"negative total", func(s *domain.Submission) { s.Total = f(-1) }, "total", domain.CodeOutOfRange},
		{"fractional total", func(s *domain.Submission) { s.Total = f(12.5) }, "total", domain.CodeInvalidFormat},
		{"blank title", func(s *domain.Submission) { s.Title = "   " }, "title", domain.CodeMissingField},
		{"missing answers", func(s *domain.Submission) { s.Answers = nil }, "answers", domain.CodeInvalidFormat},
		{"scalar answers", func(s *domain.Submission) { s.Answers = json.RawMessage(`"x"`) }, "answers", domain.CodeInvalidFormat},
		{"missing d3", func(s *domain.Submission) { s.D3 = nil }, "d3", domain.CodeMissingField},
		{"fractional d5", func(s *domain.Submission) { s.D5 = f(6.5) }, "d5", domain.CodeInvalidFormat},
		{"d2 out of range", func(s *domain.Submission) { s.D2 = f(7) }, "d2", domain.CodeOutOfRange},
		{"long cohort", func(s *domain.Submission) { s.Cohort = string(make([]rune, 101)) }, "cohort", domain.CodeInvalidFormat},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(sub)

			errs := v.ValidateSubmission(sub)

			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.code, errs[0].Code)
		})
	}
}

func TestValidateSubmission_LengthsCountCharacters(t *testing.T) {
	v := NewValidator()

	sub := validSubmission()
	sub.Name = strings.Repeat("张", MaxLabelLength)
	sub.Cohort = strings.Repeat("班", MaxLabelLength)
	sub.Title = strings.Repeat("探", MaxTitleLength)
	assert.Empty(t, v.ValidateSubmission(sub), "limits are characters, not bytes")

	sub.Name = strings.Repeat("张", MaxLabelLength+1)
	sub.Cohort = strings.Repeat("班", MaxLabelLength+1)
	sub.Title = strings.Repeat("x", MaxTitleLength+100)

	errs := v.ValidateSubmission(sub)

	assert.ElementsMatch(t, []string{"name", "cohort", "title"}, fields(errs))
	for _, e := range errs {
		assert.Equal(t, domain.CodeInvalidFormat, e.Code)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "张三", Truncate("张三丰", 2))
	assert.Len(t, []rune(Truncate(strings.Repeat("浏", 2000), MaxUserAgentLength)), MaxUserAgentLength)
}

func TestValidateSubmission_BoundsInclusive(t *testing.T) {
	v := NewValidator()
	sub := validSubmission()
	sub.Total, sub.D1, sub.D2 = f(30), f(6), f(0)
	assert.Empty(t, v.ValidateSubmission(sub))

	sub.Total = f(0)
	assert.Empty(t, v.ValidateSubmission(sub))
}

func TestValidateCohort(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateCohort("default"))
	assert.Empty(t, v.ValidateCohort("工作坊 2026"))
	assert.Len(t, v.ValidateCohort(""), 1)

	long := make([]rune, 101)
	for i := range long {
		long[i] = '班'
	}
	assert.Len(t, v.ValidateCohort(string(long)), 1)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "alice", Sanitize("  alice \n"))
	assert.Equal(t, "ab", Sanitize("a\x00b"))
	assert.Equal(t, "a\tb\nc", Sanitize("a\tb\nc"))
	assert.Equal(t, "ab", Sanitize("a\x1b\x7fb"))
	assert.Equal(t, "匿名用户", Sanitize("匿名用户"))
}
