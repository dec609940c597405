package repository

import (
	"context"
	"testing"
	"time"

	"ai-assessment/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func scoreDoc(id string, total, d int, created time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "user-" + id},
		{Key: "title", Value: "title-" + id},
		{Key: "total", Value: total},
		{Key: "d1", Value: d},
		{Key: "d2", Value: d},
		{Key: "d3", Value: d},
		{Key: "d4", Value: d},
		{Key: "d5", Value: d},
		{Key: "created_at", Value: created},
	}
}

func TestAssessmentMongoAdapter(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	ns := "assessment.ai_assessments"
	now := time.Now().UTC().Truncate(time.Millisecond)

	mt.Run("Create", func(mt *mtest.T) {
		repo := NewAssessmentMongoAdapter(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Create(context.Background(), &domain.AssessmentRecord{
			ID:        "01JABCDEFGHJKMNPQRSTVWXYZ0",
			Cohort:    "class-a",
			Total:     12,
			Answers:   []byte(`[{"questionId":1,"selectedOption":0,"value":3}]`),
			CreatedAt: now,
		})
		assert.NoError(t, err)
	})

	mt.Run("Create duplicate id", func(mt *mtest.T) {
		repo := NewAssessmentMongoAdapter(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.Create(context.Background(), &domain.AssessmentRecord{ID: "dup", Cohort: "class-a", Answers: []byte(`{}`)})

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeStoreFailure, domainErr.Code)
	})

	mt.Run("GetCohortStatistics", func(mt *mtest.T) {
		repo := NewAssessmentMongoAdapter(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			scoreDoc("b", 20, 4, now),
			scoreDoc("a", 10, 2, now.Add(-time.Minute)),
		))

		stats, err := repo.GetCohortStatistics(context.Background(), "class-a")

		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, "class-a", stats.Cohort)
		assert.Equal(t, 2, stats.TotalCount)
		assert.Equal(t, 15.0, stats.AvgTotal)
		assert.Equal(t, 3.0, stats.AvgD1)
		assert.Equal(t, 10, stats.MinTotal)
		assert.Equal(t, 20, stats.MaxTotal)
	})

	mt.Run("GetCohortStatistics empty cohort", func(mt *mtest.T) {
		repo := NewAssessmentMongoAdapter(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		stats, err := repo.GetCohortStatistics(context.Background(), "nobody")

		assert.NoError(t, err)
		assert.Nil(t, stats)
	})

	mt.Run("ListRecent", func(mt *mtest.T) {
		repo := NewAssessmentMongoAdapter(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			scoreDoc("b", 20, 4, now),
		))

		recent, err := repo.ListRecent(context.Background(), "class-a", 10)

		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, "b", recent[0].ID)
		assert.Equal(t, "user-b", recent[0].Name)
		assert.Equal(t, 20, recent[0].Scores.Total())
		assert.True(t, now.Equal(recent[0].CreatedAt))
	})

	mt.Run("ListDistribution", func(mt *mtest.T) {
		repo := NewAssessmentMongoAdapter(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			scoreDoc("b", 20, 4, now),
			scoreDoc("a", 10, 2, now.Add(-time.Minute)),
		))

		points, err := repo.ListDistribution(context.Background(), "class-a", 5000)

		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, 20, points[0].Total)
		assert.Equal(t, domain.DimensionScores{D1: 2, D2: 2, D3: 2, D4: 2, D5: 2}, points[1].Scores)
	})

	mt.Run("DeleteByCohort", func(mt *mtest.T) {
		repo := NewAssessmentMongoAdapter(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))

		deleted, err := repo.DeleteByCohort(context.Background(), "class-a")

		assert.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})

	mt.Run("EnsureIndexes", func(mt *mtest.T) {
		repo := NewAssessmentMongoAdapter(mt.Coll).(*AssessmentMongoAdapter)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(t, repo.EnsureIndexes(context.Background()))
	})

	mt.Run("Find failure", func(mt *mtest.T) {
		repo := NewAssessmentMongoAdapter(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "not authorized",
			Name:    "Unauthorized",
		}))

		_, err := repo.ListRecent(context.Background(), "class-a", 10)

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeStoreFailure, domainErr.Code)
	})
}
