package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-assessment/internal/domain"
	"ai-assessment/internal/repository/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// AssessmentMongoAdapter implements domain.AssessmentRepository on a MongoDB
// collection for deployments that still run the legacy document store.
type AssessmentMongoAdapter struct {
	collection *mongo.Collection
}

// NewAssessmentMongoAdapter creates the legacy-compatibility record store.
func NewAssessmentMongoAdapter(collection *mongo.Collection) domain.AssessmentRepository {
	return &AssessmentMongoAdapter{collection: collection}
}

// EnsureIndexes creates the cohort/created_at index used by every read.
func (a *AssessmentMongoAdapter) EnsureIndexes(ctx context.Context) error {
	_, err := a.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "cohort", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

func (a *AssessmentMongoAdapter) Create(ctx context.Context, record *domain.AssessmentRecord) error {
	doc, err := toAssessmentDocument(record)
	if err != nil {
		return domain.NewStoreFailureError("create", err).WithContext("cohort", record.Cohort)
	}
	if _, err := a.collection.InsertOne(ctx, doc); err != nil {
		return domain.NewStoreFailureError("create", err).WithContext("cohort", record.Cohort)
	}
	return nil
}

// GetCohortStatistics reads the whole cohort's score projection and aggregates it in process.
func (a *AssessmentMongoAdapter) GetCohortStatistics(ctx context.Context, cohort string) (*domain.CohortStatistics, error) {
	docs, err := a.find(ctx, cohort, 0, scoreProjection())
	if err != nil {
		return nil, domain.NewStoreFailureError("get cohort statistics", err).WithContext("cohort", cohort)
	}
	return domain.ComputeCohortStatistics(cohort, toDistribution(docs)), nil
}

func (a *AssessmentMongoAdapter) ListRecent(ctx context.Context, cohort string, limit int) ([]domain.RecentAssessment, error) {
	projection := scoreProjection()
	projection = append(projection, bson.E{Key: "_id", Value: 1}, bson.E{Key: "name", Value: 1}, bson.E{Key: "title", Value: 1})

	docs, err := a.find(ctx, cohort, int64(domain.ClampRecentLimit(limit)), projection)
	if err != nil {
		return nil, domain.NewStoreFailureError("list recent", err).WithContext("cohort", cohort)
	}

	result := make([]domain.RecentAssessment, 0, len(docs))
	for _, d := range docs {
		result = append(result, domain.RecentAssessment{
			ID:        d.ID,
			Name:      d.Name,
			Total:     d.Total,
			Title:     d.Title,
			Scores:    documentScores(d),
			CreatedAt: d.CreatedAt,
		})
	}
	return result, nil
}

func (a *AssessmentMongoAdapter) ListDistribution(ctx context.Context, cohort string, limit int) ([]domain.DistributionPoint, error) {
	if limit <= 0 || limit > domain.DistributionLimit {
		limit = domain.DistributionLimit
	}

	docs, err := a.find(ctx, cohort, int64(limit), scoreProjection())
	if err != nil {
		return nil, domain.NewStoreFailureError("list distribution", err).WithContext("cohort", cohort)
	}
	return toDistribution(docs), nil
}

func (a *AssessmentMongoAdapter) DeleteByCohort(ctx context.Context, cohort string) (int64, error) {
	res, err := a.collection.DeleteMany(ctx, bson.M{"cohort": cohort})
	if err != nil {
		return 0, domain.NewStoreFailureError("delete cohort", err).WithContext("cohort", cohort)
	}
	return res.DeletedCount, nil
}

func (a *AssessmentMongoAdapter) Ping(ctx context.Context) error {
	return a.collection.Database().Client().Ping(ctx, readpref.Primary())
}

// find returns the cohort's documents newest first. A zero limit reads all of them.
func (a *AssessmentMongoAdapter) find(ctx context.Context, cohort string, limit int64, projection bson.D) ([]models.AssessmentDocument, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(projection)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := a.collection.Find(ctx, bson.M{"cohort": cohort}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.AssessmentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func scoreProjection() bson.D {
	return bson.D{
		{Key: "total", Value: 1},
		{Key: "d1", Value: 1},
		{Key: "d2", Value: 1},
		{Key: "d3", Value: 1},
		{Key: "d4", Value: 1},
		{Key: "d5", Value: 1},
		{Key: "created_at", Value: 1},
	}
}

func toAssessmentDocument(r *domain.AssessmentRecord) (*models.AssessmentDocument, error) {
	var answers interface{}
	if len(r.Answers) > 0 {
		if err := json.Unmarshal(r.Answers, &answers); err != nil {
			return nil, fmt.Errorf("failed to decode answers: %w", err)
		}
	}

	return &models.AssessmentDocument{
		ID:        r.ID,
		Name:      r.Name,
		Cohort:    r.Cohort,
		Total:     r.Total,
		Title:     r.Title,
		D1:        r.Scores.D1,
		D2:        r.Scores.D2,
		D3:        r.Scores.D3,
		D4:        r.Scores.D4,
		D5:        r.Scores.D5,
		Answers:   answers,
		UserAgent: r.UserAgent,
		CreatedAt: r.CreatedAt,
	}, nil
}

func toDistribution(docs []models.AssessmentDocument) []domain.DistributionPoint {
	points := make([]domain.DistributionPoint, 0, len(docs))
	for _, d := range docs {
		points = append(points, domain.DistributionPoint{
			Total:     d.Total,
			Scores:    documentScores(d),
			CreatedAt: d.CreatedAt,
		})
	}
	return points
}

func documentScores(d models.AssessmentDocument) domain.DimensionScores {
	return domain.DimensionScores{D1: d.D1, D2: d.D2, D3: d.D3, D4: d.D4, D5: d.D5}
}
