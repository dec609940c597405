package domain

import (
	"context"
	"encoding/json"
	"math"
	"time"
)

const (
	DefaultName   = "匿名用户"
	DefaultCohort = "default"

	MaxTotalScore     = 30
	MaxDimensionScore = 6

	DefaultRecentLimit = 50
	MaxRecentLimit     = 100
	DistributionLimit  = 1000
)

// Answer is one response to a question. Value is the integer attached to the
// chosen option.
type Answer struct {
	QuestionID     int `json:"questionId"`
	SelectedOption int `json:"selectedOption"`
	Value          int `json:"value"`
}

// DimensionScores holds the per-dimension sums d1..d5.
type DimensionScores struct {
	D1 int `json:"d1"`
	D2 int `json:"d2"`
	D3 int `json:"d3"`
	D4 int `json:"d4"`
	D5 int `json:"d5"`
}

// Total is the sum of the five dimensions.
func (d DimensionScores) Total() int {
	return d.D1 + d.D2 + d.D3 + d.D4 + d.D5
}

// add credits value to the given dimension (1-5). Other dimensions are ignored.
func (d *DimensionScores) add(dimension, value int) {
	switch dimension {
	case 1:
		d.D1 += value
	case 2:
		d.D2 += value
	case 3:
		d.D3 += value
	case 4:
		d.D4 += value
	case 5:
		d.D5 += value
	}
}

// AssessmentResult is the outcome of scoring one answer sequence.
type AssessmentResult struct {
	Total      int
	Dimensions DimensionScores
	Persona    Persona
	Answers    []Answer
}

// Submission is the typed candidate record built from a client request.
// Numeric fields are pointers so that an absent value can be told apart from zero.
type Submission struct {
	Name      string
	Cohort    string
	Title     string
	UserAgent string
	Total     *float64
	D1        *float64
	D2        *float64
	D3        *float64
	D4        *float64
	D5        *float64
	Answers   json.RawMessage
}

// Dimensions returns d1..d5 in order, keyed by their wire names.
func (s *Submission) Dimensions() []NamedScore {
	return []NamedScore{
		{Field: "d1", Value: s.D1},
		{Field: "d2", Value: s.D2},
		{Field: "d3", Value: s.D3},
		{Field: "d4", Value: s.D4},
		{Field: "d5", Value: s.D5},
	}
}

// NamedScore pairs a dimension field name with its submitted value.
type NamedScore struct {
	Field string
	Value *float64
}

// ToRecord converts an already validated submission into a persistable record.
func (s *Submission) ToRecord(id string, createdAt time.Time) *AssessmentRecord {
	return &AssessmentRecord{
		ID:     id,
		Name:   s.Name,
		Cohort: s.Cohort,
		Total:  intValue(s.Total),
		Title:  s.Title,
		Scores: DimensionScores{
			D1: intValue(s.D1),
			D2: intValue(s.D2),
			D3: intValue(s.D3),
			D4: intValue(s.D4),
			D5: intValue(s.D5),
		},
		Answers:   s.Answers,
		UserAgent: s.UserAgent,
		CreatedAt: createdAt,
	}
}

func intValue(f *float64) int {
	if f == nil {
		return 0
	}
	return int(math.Round(*f))
}

// AssessmentRecord is a persisted submission. Records are never updated.
type AssessmentRecord struct {
	ID        string
	Name      string
	Cohort    string
	Total     int
	Title     string
	Scores    DimensionScores
	Answers   json.RawMessage
	UserAgent string
	CreatedAt time.Time
}

// RecentAssessment is the non-sensitive projection of a record.
type RecentAssessment struct {
	ID        string
	Name      string
	Total     int
	Title     string
	Scores    DimensionScores
	CreatedAt time.Time
}

// DistributionPoint is the score projection of a record used for client-side charts.
type DistributionPoint struct {
	Total     int
	Scores    DimensionScores
	CreatedAt time.Time
}

// CohortStatistics is derived on demand from the records of one cohort.
type CohortStatistics struct {
	Cohort     string  `json:"cohort"`
	TotalCount int     `json:"total_count"`
	AvgTotal   float64 `json:"avg_total"`
	AvgD1      float64 `json:"avg_d1"`
	AvgD2      float64 `json:"avg_d2"`
	AvgD3      float64 `json:"avg_d3"`
	AvgD4      float64 `json:"avg_d4"`
	AvgD5      float64 `json:"avg_d5"`
	MinTotal   int     `json:"min_total"`
	MaxTotal   int     `json:"max_total"`
}

// AssessmentRepository is the record store. Implementations return (nil, nil)
// from GetCohortStatistics when the cohort has no records.
type AssessmentRepository interface {
	Create(ctx context.Context, record *AssessmentRecord) error
	GetCohortStatistics(ctx context.Context, cohort string) (*CohortStatistics, error)
	ListRecent(ctx context.Context, cohort string, limit int) ([]RecentAssessment, error)
	ListDistribution(ctx context.Context, cohort string, limit int) ([]DistributionPoint, error)
	DeleteByCohort(ctx context.Context, cohort string) (int64, error)
	Ping(ctx context.Context) error
}

// TransactionManager runs fn inside a store transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ClampRecentLimit applies the default and ceiling of the recent-records query.
func ClampRecentLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		return MaxRecentLimit
	}
	return limit
}
