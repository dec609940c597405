package handler

import (
	"encoding/json"
	"errors"

	"ai-assessment/internal/domain"
	"ai-assessment/internal/dto"
	"ai-assessment/internal/middleware"
	"ai-assessment/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AssessmentHandler handles assessment-related HTTP requests
type AssessmentHandler struct {
	service service.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler instance
func NewAssessmentHandler(service service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// GetQuestions godoc
// @Summary Get the question set
// @Description Returns the ten fixed questions with their options and the dimension names
// @Tags questions
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=dto.QuestionSetResponse}
// @Router /questions [get]
func (h *AssessmentHandler) GetQuestions(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.service.Questions()))
}

// Evaluate godoc
// @Summary Score answers on the server
// @Description Computes dimension scores, total and persona from question/option pairs
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Answers"
// @Success 200 {object} dto.SuccessResponse{data=dto.EvaluateResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /assessments/evaluate [post]
func (h *AssessmentHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}

	result, err := h.service.Evaluate(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(result))
}

// Submit godoc
// @Summary Submit an assessment result
// @Description Validates and stores a client-computed result. Limited per client IP.
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body dto.SubmitAssessmentRequest true "Assessment result"
// @Success 201 {object} dto.SuccessResponse{data=dto.SubmitAssessmentResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments [post]
func (h *AssessmentHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return h.submissionBodyError(&req, c.Get(fiber.HeaderUserAgent), err)
	}

	resp, err := h.service.Submit(c.UserContext(), &req, c.Get(fiber.HeaderUserAgent))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(resp))
}

// GetCohortStatistics godoc
// @Summary Get cohort statistics
// @Description Count, averages, min and max of a cohort. data is null when the cohort has no records.
// @Tags assessments
// @Produce json
// @Param cohort path string true "Cohort"
// @Success 200 {object} dto.SuccessResponse{data=domain.CohortStatistics}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments/stats/{cohort} [get]
func (h *AssessmentHandler) GetCohortStatistics(c *fiber.Ctx) error {
	stats, err := h.service.GetCohortStatistics(c.UserContext(), middleware.CohortFrom(c))
	if err != nil {
		return err
	}
	if stats == nil {
		return c.JSON(dto.OK(nil))
	}
	return c.JSON(dto.OK(stats))
}

// ListRecent godoc
// @Summary List recent assessments
// @Description Newest first, without answers or user agent
// @Tags assessments
// @Produce json
// @Param cohort path string true "Cohort"
// @Param limit query int false "Maximum rows (default 50, max 100)"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.RecentAssessmentResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments/recent/{cohort} [get]
func (h *AssessmentHandler) ListRecent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", domain.DefaultRecentLimit)

	records, err := h.service.ListRecent(c.UserContext(), middleware.CohortFrom(c), limit)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(records))
}

// ListDistribution godoc
// @Summary Score distribution of a cohort
// @Description Newest first, at most 1000 rows
// @Tags assessments
// @Produce json
// @Param cohort path string true "Cohort"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.DistributionPointResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments/distribution/{cohort} [get]
func (h *AssessmentHandler) ListDistribution(c *fiber.Ctx) error {
	points, err := h.service.ListDistribution(c.UserContext(), middleware.CohortFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(points))
}

// DeleteCohort godoc
// @Summary Delete every record of a cohort
// @Tags assessments
// @Produce json
// @Param cohort path string true "Cohort"
// @Success 200 {object} dto.SuccessResponse{data=dto.DeleteCohortResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments/{cohort} [delete]
func (h *AssessmentHandler) DeleteCohort(c *fiber.Ctx) error {
	resp, err := h.service.DeleteCohort(c.UserContext(), middleware.CohortFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(resp))
}

// submissionBodyError reports a wrongly typed field together with every other
// violation of the fields that did decode.
func (h *AssessmentHandler) submissionBodyError(req *dto.SubmitAssessmentRequest, userAgent string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return bodyError(err)
	}

	errs := domain.ValidationErrors{domain.NewInvalidFormatError(typeErr.Field, "has the wrong type")}
	for _, e := range h.service.ValidateSubmission(req, userAgent) {
		// the undecoded field otherwise shows up again as missing
		if e.Field != typeErr.Field {
			errs = append(errs, e)
		}
	}
	return errs
}

// bodyError turns a decode failure into a validation error naming the field when possible.
func bodyError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.ValidationErrors{domain.NewInvalidFormatError(typeErr.Field, "has the wrong type")}
	}
	return domain.ValidationErrors{domain.NewInvalidFormatError("body", "must be a JSON object")}
}
