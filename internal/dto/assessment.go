package dto

import (
	"encoding/json"
	"time"
)

// SubmitAssessmentRequest is the body of POST /api/assessments.
// Numbers are pointers so that a missing field can be reported.
// @Description Client-computed assessment result to persist
type SubmitAssessmentRequest struct {
	Name      string          `json:"name"`
	Cohort    string          `json:"cohort"`
	Total     *float64        `json:"total"`
	Title     string          `json:"title"`
	D1        *float64        `json:"d1"`
	D2        *float64        `json:"d2"`
	D3        *float64        `json:"d3"`
	D4        *float64        `json:"d4"`
	D5        *float64        `json:"d5"`
	Answers   json.RawMessage `json:"answers" swaggertype:"object"`
	UserAgent string          `json:"user_agent"`
}

// SubmitAssessmentResponse carries the server-assigned id.
type SubmitAssessmentResponse struct {
	ID string `json:"id"`
}

// AnswerInput is one answer sent for server-side scoring.
type AnswerInput struct {
	QuestionID     int `json:"question_id"`
	SelectedOption int `json:"selected_option"`
}

// EvaluateRequest is the body of POST /api/assessments/evaluate.
// @Description Answers to score on the server
type EvaluateRequest struct {
	Answers []AnswerInput `json:"answers"`
}

// DimensionScores are the five per-dimension sums.
type DimensionScores struct {
	D1 int `json:"d1"`
	D2 int `json:"d2"`
	D3 int `json:"d3"`
	D4 int `json:"d4"`
	D5 int `json:"d5"`
}

// AnswerResponse echoes a scored answer.
type AnswerResponse struct {
	QuestionID     int `json:"questionId"`
	SelectedOption int `json:"selectedOption"`
	Value          int `json:"value"`
}

// PersonaResponse describes the persona a total maps to.
type PersonaResponse struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}

// EvaluateResponse is the scored result.
// @Description Dimension scores, total and persona
type EvaluateResponse struct {
	Total      int              `json:"total"`
	Dimensions DimensionScores  `json:"dimensions"`
	Persona    PersonaResponse  `json:"persona"`
	Answers    []AnswerResponse `json:"answers"`
}

// OptionResponse is one selectable option of a question.
type OptionResponse struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// QuestionResponse is one question of the fixed set.
type QuestionResponse struct {
	ID        int              `json:"id"`
	Dimension int              `json:"dimension"`
	Text      string           `json:"text"`
	Options   []OptionResponse `json:"options"`
}

// QuestionSetResponse is returned by GET /api/questions.
type QuestionSetResponse struct {
	Questions  []QuestionResponse `json:"questions"`
	Dimensions map[int]string     `json:"dimensions"`
}

// RecentAssessmentResponse excludes answers and user agent.
type RecentAssessmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Total     int       `json:"total"`
	Title     string    `json:"title"`
	D1        int       `json:"d1"`
	D2        int       `json:"d2"`
	D3        int       `json:"d3"`
	D4        int       `json:"d4"`
	D5        int       `json:"d5"`
	CreatedAt time.Time `json:"created_at"`
}

// DistributionPointResponse is one row of the distribution query.
type DistributionPointResponse struct {
	Total     int       `json:"total"`
	D1        int       `json:"d1"`
	D2        int       `json:"d2"`
	D3        int       `json:"d3"`
	D4        int       `json:"d4"`
	D5        int       `json:"d5"`
	CreatedAt time.Time `json:"created_at"`
}

// DeleteCohortResponse reports how many records were removed.
type DeleteCohortResponse struct {
	DeletedCount int64  `json:"deleted_count"`
	Cohort       string `json:"cohort"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache,omitempty"`
}

// SuccessResponse is the envelope of every successful call. Data is always
// present and may be null.
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

// ErrorBody is the error part of the envelope.
type ErrorBody struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse is the envelope of every failed call.
type ErrorResponse struct {
	Success bool      `json:"success" example:"false"`
	Error   ErrorBody `json:"error"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// Fail builds an error envelope.
func Fail(message string, details interface{}) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Message: message, Details: details}}
}
