package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCohortStatistics_EmptyIsAbsent(t *testing.T) {
	assert.Nil(t, ComputeCohortStatistics("class-a", nil))
	assert.Nil(t, ComputeCohortStatistics("class-a", []DistributionPoint{}))
}

func TestComputeCohortStatistics(t *testing.T) {
	now := time.Now()
	points := []DistributionPoint{
		{Total: 10, Scores: DimensionScores{D1: 2, D2: 2, D3: 2, D4: 2, D5: 2}, CreatedAt: now},
		{Total: 20, Scores: DimensionScores{D1: 4, D2: 5, D3: 3, D4: 4, D5: 4}, CreatedAt: now},
	}

	stats := ComputeCohortStatistics("class-a", points)
	require.NotNil(t, stats)

	assert.Equal(t, "class-a", stats.Cohort)
	assert.Equal(t, 2, stats.TotalCount)
	assert.Equal(t, 15.0, stats.AvgTotal)
	assert.Equal(t, 3.0, stats.AvgD1)
	assert.Equal(t, 3.5, stats.AvgD2)
	assert.Equal(t, 2.5, stats.AvgD3)
	assert.Equal(t, 3.0, stats.AvgD4)
	assert.Equal(t, 3.0, stats.AvgD5)
	assert.Equal(t, 10, stats.MinTotal)
	assert.Equal(t, 20, stats.MaxTotal)
}

func TestComputeCohortStatistics_SingleRecord(t *testing.T) {
	stats := ComputeCohortStatistics("solo", []DistributionPoint{{Total: 7}})
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.TotalCount)
	assert.Equal(t, 7, stats.MinTotal)
	assert.Equal(t, 7, stats.MaxTotal)
	assert.Equal(t, 7.0, stats.AvgTotal)
}

func TestClampRecentLimit(t *testing.T) {
	assert.Equal(t, 100, ClampRecentLimit(500))
	assert.Equal(t, 100, ClampRecentLimit(101))
	assert.Equal(t, 100, ClampRecentLimit(100))
	assert.Equal(t, 20, ClampRecentLimit(20))
	assert.Equal(t, 50, ClampRecentLimit(0))
	assert.Equal(t, 50, ClampRecentLimit(-3))
}

func TestSubmission_ToRecord(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sub := &Submission{
		Name: "alice", Cohort: "c1", Title: "t", UserAgent: "ua",
		Total: f(12), D1: f(1), D2: f(2), D3: f(3), D4: f(3), D5: f(3),
		Answers: []byte(`{"1":0}`),
	}

	rec := sub.ToRecord("01HX", created)

	assert.Equal(t, "01HX", rec.ID)
	assert.Equal(t, 12, rec.Total)
	assert.Equal(t, DimensionScores{D1: 1, D2: 2, D3: 3, D4: 3, D5: 3}, rec.Scores)
	assert.Equal(t, created, rec.CreatedAt)
	assert.JSONEq(t, `{"1":0}`, string(rec.Answers))
}
