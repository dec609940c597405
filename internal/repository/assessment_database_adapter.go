package repository

import (
	"context"
	"database/sql"
	"errors"

	"ai-assessment/internal/domain"
	"ai-assessment/internal/repository/models"
	"ai-assessment/internal/util"

	"github.com/jmoiron/sqlx"
)

// AssessmentDatabaseAdapter implements domain.AssessmentRepository on Oracle through sqlx.
type AssessmentDatabaseAdapter struct {
	db *sqlx.DB
	tm domain.TransactionManager
}

// NewAssessmentDatabaseAdapter creates the primary record store.
func NewAssessmentDatabaseAdapter(db *sqlx.DB, tm domain.TransactionManager) domain.AssessmentRepository {
	return &AssessmentDatabaseAdapter{db: db, tm: tm}
}

// Create implements domain.AssessmentRepository
func (a *AssessmentDatabaseAdapter) Create(ctx context.Context, record *domain.AssessmentRecord) error {
	query := `INSERT INTO ai_assessments (
		id, name, cohort, total, title, d1, d2, d3, d4, d5, answers, user_agent, created_at
	) VALUES (
		:id, :name, :cohort, :total, :title, :d1, :d2, :d3, :d4, :d5, :answers, :user_agent, :created_at
	)`

	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, toModelAssessment(record)); err != nil {
		return domain.NewStoreFailureError("create", err).WithContext("cohort", record.Cohort)
	}
	return nil
}

// GetCohortStatistics implements domain.AssessmentRepository
func (a *AssessmentDatabaseAdapter) GetCohortStatistics(ctx context.Context, cohort string) (*domain.CohortStatistics, error) {
	var row models.AssessmentStats
	query := `SELECT
		cohort "cohort",
		total_count "total_count",
		avg_total "avg_total",
		avg_d1 "avg_d1",
		avg_d2 "avg_d2",
		avg_d3 "avg_d3",
		avg_d4 "avg_d4",
		avg_d5 "avg_d5",
		min_total "min_total",
		max_total "max_total"
	FROM ai_assessment_public_stats
	WHERE cohort = :1`

	err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query, cohort)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStoreFailureError("get cohort statistics", err).WithContext("cohort", cohort)
	}
	if row.TotalCount == 0 {
		return nil, nil
	}

	return &domain.CohortStatistics{
		Cohort:     row.Cohort,
		TotalCount: row.TotalCount,
		AvgTotal:   row.AvgTotal,
		AvgD1:      row.AvgD1,
		AvgD2:      row.AvgD2,
		AvgD3:      row.AvgD3,
		AvgD4:      row.AvgD4,
		AvgD5:      row.AvgD5,
		MinTotal:   row.MinTotal,
		MaxTotal:   row.MaxTotal,
	}, nil
}

// ListRecent implements domain.AssessmentRepository
func (a *AssessmentDatabaseAdapter) ListRecent(ctx context.Context, cohort string, limit int) ([]domain.RecentAssessment, error) {
	var rows []models.AssessmentSummary
	query := `SELECT
		id "id",
		name "name",
		total "total",
		title "title",
		d1 "d1",
		d2 "d2",
		d3 "d3",
		d4 "d4",
		d5 "d5",
		created_at "created_at"
	FROM ai_assessments
	WHERE cohort = :1
	ORDER BY created_at DESC
	FETCH FIRST :2 ROWS ONLY`

	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, cohort, domain.ClampRecentLimit(limit)); err != nil {
		return nil, domain.NewStoreFailureError("list recent", err).WithContext("cohort", cohort)
	}

	result := make([]domain.RecentAssessment, 0, len(rows))
	for _, r := range rows {
		result = append(result, domain.RecentAssessment{
			ID:        r.ID.String,
			Name:      r.Name.String,
			Total:     r.Total,
			Title:     r.Title.String,
			Scores:    summaryScores(r),
			CreatedAt: r.CreatedAt,
		})
	}
	return result, nil
}

// ListDistribution implements domain.AssessmentRepository
func (a *AssessmentDatabaseAdapter) ListDistribution(ctx context.Context, cohort string, limit int) ([]domain.DistributionPoint, error) {
	if limit <= 0 || limit > domain.DistributionLimit {
		limit = domain.DistributionLimit
	}

	var rows []models.AssessmentSummary
	query := `SELECT
		total "total",
		d1 "d1",
		d2 "d2",
		d3 "d3",
		d4 "d4",
		d5 "d5",
		created_at "created_at"
	FROM ai_assessments
	WHERE cohort = :1
	ORDER BY created_at DESC
	FETCH FIRST :2 ROWS ONLY`

	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, cohort, limit); err != nil {
		return nil, domain.NewStoreFailureError("list distribution", err).WithContext("cohort", cohort)
	}

	result := make([]domain.DistributionPoint, 0, len(rows))
	for _, r := range rows {
		result = append(result, domain.DistributionPoint{
			Total:     r.Total,
			Scores:    summaryScores(r),
			CreatedAt: r.CreatedAt,
		})
	}
	return result, nil
}

// DeleteByCohort counts and removes the cohort's records in one transaction.
// The count is taken inside the transaction so it matches what was deleted.
func (a *AssessmentDatabaseAdapter) DeleteByCohort(ctx context.Context, cohort string) (int64, error) {
	var deleted int64
	err := a.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, a.db)

		if err := exec.GetContext(txCtx, &deleted, `SELECT COUNT(*) FROM ai_assessments WHERE cohort = :1`, cohort); err != nil {
			return err
		}
		if deleted == 0 {
			return nil
		}
		_, err := exec.ExecContext(txCtx, `DELETE FROM ai_assessments WHERE cohort = :1`, cohort)
		return err
	})
	if err != nil {
		return 0, domain.NewStoreFailureError("delete cohort", err).WithContext("cohort", cohort)
	}
	return deleted, nil
}

// Ping implements domain.AssessmentRepository
func (a *AssessmentDatabaseAdapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

func toModelAssessment(r *domain.AssessmentRecord) *models.Assessment {
	return &models.Assessment{
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
		Answers:   models.JSONDocument(r.Answers),
		UserAgent: util.StringToNullString(r.UserAgent),
		CreatedAt: r.CreatedAt,
	}
}

func summaryScores(r models.AssessmentSummary) domain.DimensionScores {
	return domain.DimensionScores{D1: r.D1, D2: r.D2, D3: r.D3, D4: r.D4, D5: r.D5}
}
