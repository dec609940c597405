package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-assessment/internal/domain"
	"ai-assessment/internal/dto"
	"ai-assessment/internal/logger"
	"ai-assessment/internal/util"
	"ai-assessment/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// AssessmentService defines the assessment use cases exposed over HTTP.
type AssessmentService interface {
	Questions() *dto.QuestionSetResponse
	Evaluate(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluateResponse, error)
	Submit(ctx context.Context, req *dto.SubmitAssessmentRequest, userAgent string) (*dto.SubmitAssessmentResponse, error)
	ValidateSubmission(req *dto.SubmitAssessmentRequest, userAgent string) domain.ValidationErrors
	GetCohortStatistics(ctx context.Context, cohort string) (*domain.CohortStatistics, error)
	ListRecent(ctx context.Context, cohort string, limit int) ([]dto.RecentAssessmentResponse, error)
	ListDistribution(ctx context.Context, cohort string) ([]dto.DistributionPointResponse, error)
	DeleteCohort(ctx context.Context, cohort string) (*dto.DeleteCohortResponse, error)
}

// SubmissionRecorder observes every persisted submission.
type SubmissionRecorder interface {
	RecordSubmission(persona domain.PersonaKey)
}

type noopRecorder struct{}

func (noopRecorder) RecordSubmission(domain.PersonaKey) {}

type assessmentService struct {
	repo       domain.AssessmentRepository
	statsCache StatsCacheService
	validator  *validation.Validator
	recorder   SubmissionRecorder
	group      singleflight.Group
	now        func() time.Time
}

// NewAssessmentService wires the record store, the statistics cache and an
// optional submission recorder.
func NewAssessmentService(
	repo domain.AssessmentRepository,
	statsCache StatsCacheService,
	recorder SubmissionRecorder,
) AssessmentService {
	if statsCache == nil {
		statsCache = &noopStatsCacheService{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &assessmentService{
		repo:       repo,
		statsCache: statsCache,
		validator:  validation.NewValidator(),
		recorder:   recorder,
		now:        time.Now,
	}
}

func (s *assessmentService) Questions() *dto.QuestionSetResponse {
	questions := make([]dto.QuestionResponse, 0, len(domain.Questions))
	for _, q := range domain.Questions {
		options := make([]dto.OptionResponse, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, dto.OptionResponse{Text: o.Text, Value: o.Value})
		}
		questions = append(questions, dto.QuestionResponse{
			ID:        q.ID,
			Dimension: q.Dimension,
			Text:      q.Text,
			Options:   options,
		})
	}
	return &dto.QuestionSetResponse{Questions: questions, Dimensions: domain.DimensionNames}
}

// Evaluate scores answers on the server. Option values always come from the
// question set. Unknown questions are skipped.
func (s *assessmentService) Evaluate(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluateResponse, error) {
	if req == nil {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("answers")}
	}

	var errs domain.ValidationErrors
	answers := make([]domain.Answer, 0, len(req.Answers))
	for i, in := range req.Answers {
		answer, err := domain.ResolveAnswer(in.QuestionID, in.SelectedOption)
		switch {
		case errors.Is(err, domain.ErrUnknownQuestion):
			logger.Get().Debug("Ignoring answer to unknown question", zap.Int("question_id", in.QuestionID))
			continue
		case errors.Is(err, domain.ErrOptionOutOfRange):
			q := domain.FindQuestion(in.QuestionID)
			errs = append(errs, domain.NewOutOfRangeError(
				fmt.Sprintf("answers[%d].selected_option", i), 0, len(q.Options)-1))
			continue
		case err != nil:
			return nil, domain.NewInternalError("failed to resolve answer", err)
		}
		answers = append(answers, answer)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return toEvaluateResponse(domain.ComputeResult(answers)), nil
}

// Submit applies defaults, validates and persists a client-computed result.
func (s *assessmentService) Submit(ctx context.Context, req *dto.SubmitAssessmentRequest, userAgent string) (*dto.SubmitAssessmentResponse, error) {
	sub := toSubmission(req, userAgent)

	if errs := s.validator.ValidateSubmission(sub); len(errs) > 0 {
		return nil, errs
	}

	createdAt := s.now().UTC()
	record := sub.ToRecord(util.NewULIDAt(createdAt), createdAt)

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := s.statsCache.Invalidate(ctx, record.Cohort); err != nil {
		logger.Get().Warn("Failed to invalidate cohort statistics", zap.String("cohort", record.Cohort), zap.Error(err))
	}
	s.recorder.RecordSubmission(domain.ClassifyPersona(record.Total).Key)

	logger.Get().Info("Assessment submitted",
		zap.String("id", record.ID),
		zap.String("cohort", record.Cohort),
		zap.Int("total", record.Total),
	)
	return &dto.SubmitAssessmentResponse{ID: record.ID}, nil
}

// ValidateSubmission applies the same defaults as Submit and reports every
// violation without persisting anything.
func (s *assessmentService) ValidateSubmission(req *dto.SubmitAssessmentRequest, userAgent string) domain.ValidationErrors {
	return s.validator.ValidateSubmission(toSubmission(req, userAgent))
}

// GetCohortStatistics returns nil without error when the cohort has no records.
// Concurrent misses for the same cohort share one store query.
func (s *assessmentService) GetCohortStatistics(ctx context.Context, cohort string) (*domain.CohortStatistics, error) {
	stats, err := s.statsCache.Get(ctx, cohort)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, ErrStatsNotCached) {
		logger.Get().Warn("Statistics cache read failed, falling back to store", zap.String("cohort", cohort), zap.Error(err))
	}

	v, err, _ := s.group.Do(cohort, func() (interface{}, error) {
		// shared by every waiting caller, not bound to the first request
		shared := context.WithoutCancel(ctx)
		stats, err := s.repo.GetCohortStatistics(shared, cohort)
		if err != nil {
			return nil, err
		}
		if stats != nil {
			if err := s.statsCache.Put(shared, stats); err != nil {
				logger.Get().Warn("Failed to cache cohort statistics", zap.String("cohort", cohort), zap.Error(err))
			}
		}
		return stats, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.CohortStatistics), nil
}

func (s *assessmentService) ListRecent(ctx context.Context, cohort string, limit int) ([]dto.RecentAssessmentResponse, error) {
	records, err := s.repo.ListRecent(ctx, cohort, domain.ClampRecentLimit(limit))
	if err != nil {
		return nil, err
	}

	result := make([]dto.RecentAssessmentResponse, 0, len(records))
	for _, r := range records {
		result = append(result, dto.RecentAssessmentResponse{
			ID:        r.ID,
			Name:      r.Name,
			Total:     r.Total,
			Title:     r.Title,
			D1:        r.Scores.D1,
			D2:        r.Scores.D2,
			D3:        r.Scores.D3,
			D4:        r.Scores.D4,
			D5:        r.Scores.D5,
			CreatedAt: r.CreatedAt,
		})
	}
	return result, nil
}

func (s *assessmentService) ListDistribution(ctx context.Context, cohort string) ([]dto.DistributionPointResponse, error) {
	points, err := s.repo.ListDistribution(ctx, cohort, domain.DistributionLimit)
	if err != nil {
		return nil, err
	}

	result := make([]dto.DistributionPointResponse, 0, len(points))
	for _, p := range points {
		result = append(result, dto.DistributionPointResponse{
			Total:     p.Total,
			D1:        p.Scores.D1,
			D2:        p.Scores.D2,
			D3:        p.Scores.D3,
			D4:        p.Scores.D4,
			D5:        p.Scores.D5,
			CreatedAt: p.CreatedAt,
		})
	}
	return result, nil
}

func (s *assessmentService) DeleteCohort(ctx context.Context, cohort string) (*dto.DeleteCohortResponse, error) {
	deleted, err := s.repo.DeleteByCohort(ctx, cohort)
	if err != nil {
		return nil, err
	}

	if err := s.statsCache.Invalidate(ctx, cohort); err != nil {
		logger.Get().Warn("Failed to invalidate cohort statistics", zap.String("cohort", cohort), zap.Error(err))
	}

	logger.Get().Info("Cohort deleted", zap.String("cohort", cohort), zap.Int64("deleted_count", deleted))
	return &dto.DeleteCohortResponse{DeletedCount: deleted, Cohort: cohort}, nil
}

// toSubmission is the single place where request defaults are applied.
func toSubmission(req *dto.SubmitAssessmentRequest, userAgent string) *domain.Submission {
	if req == nil {
		req = &dto.SubmitAssessmentRequest{}
	}

	sub := &domain.Submission{
		Name:      validation.Sanitize(req.Name),
		Cohort:    validation.Sanitize(req.Cohort),
		Title:     validation.Sanitize(req.Title),
		UserAgent: validation.Sanitize(req.UserAgent),
		Total:     req.Total,
		D1:        req.D1,
		D2:        req.D2,
		D3:        req.D3,
		D4:        req.D4,
		D5:        req.D5,
		Answers:   req.Answers,
	}
	if sub.Name == "" {
		sub.Name = domain.DefaultName
	}
	if sub.Cohort == "" {
		sub.Cohort = domain.DefaultCohort
	}
	if sub.UserAgent == "" {
		sub.UserAgent = validation.Sanitize(userAgent)
	}
	sub.UserAgent = validation.Truncate(sub.UserAgent, validation.MaxUserAgentLength)
	return sub
}

func toEvaluateResponse(result *domain.AssessmentResult) *dto.EvaluateResponse {
	answers := make([]dto.AnswerResponse, 0, len(result.Answers))
	for _, a := range result.Answers {
		answers = append(answers, dto.AnswerResponse{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			Value:          a.Value,
		})
	}

	return &dto.EvaluateResponse{
		Total: result.Total,
		Dimensions: dto.DimensionScores{
			D1: result.Dimensions.D1,
			D2: result.Dimensions.D2,
			D3: result.Dimensions.D3,
			D4: result.Dimensions.D4,
			D5: result.Dimensions.D5,
		},
		Persona: dto.PersonaResponse{
			Key:         string(result.Persona.Key),
			Title:       result.Persona.Title,
			Description: result.Persona.Description,
			Suggestion:  result.Persona.Suggestion,
		},
		Answers: answers,
	}
}
