package handler

import (
	"ai-assessment/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Routes groups what SetupRoutes needs.
type Routes struct {
	Assessments   *AssessmentHandler
	Health        *HealthHandler
	SubmitLimiter fiber.Handler
}

// SetupRoutes registers /health and the /api group.
func SetupRoutes(app *fiber.App, r Routes) {
	if r.Health != nil {
		app.Get("/health", r.Health.Check)
	}

	validate := middleware.NewValidationMiddleware()
	limit := r.SubmitLimiter
	if limit == nil {
		limit = func(c *fiber.Ctx) error { return c.Next() }
	}

	api := app.Group("/api")
	api.Get("/questions", r.Assessments.GetQuestions)

	assessments := api.Group("/assessments")
	assessments.Post("/", limit, r.Assessments.Submit)
	assessments.Post("/evaluate", r.Assessments.Evaluate)
	assessments.Get("/stats/:cohort", validate.ValidateCohort(), r.Assessments.GetCohortStatistics)
	assessments.Get("/recent/:cohort", validate.ValidateCohort(), r.Assessments.ListRecent)
	assessments.Get("/distribution/:cohort", validate.ValidateCohort(), r.Assessments.ListDistribution)
	assessments.Delete("/:cohort", validate.ValidateCohort(), r.Assessments.DeleteCohort)

	api.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "路由未找到: "+c.Path())
	})
}
