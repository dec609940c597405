package middleware

import (
	"ai-assessment/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// LocalsCohort is the key of the validated cohort path parameter.
const LocalsCohort = "validated_cohort"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateCohort sanitizes and validates the :cohort path parameter.
func (vm *ValidationMiddleware) ValidateCohort() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Params alias the request buffer, which fiber reuses
		cohort := validation.Sanitize(utils.CopyString(c.Params("cohort")))

		if errs := vm.validator.ValidateCohort(cohort); len(errs) > 0 {
			return errs
		}

		c.Locals(LocalsCohort, cohort)
		return c.Next()
	}
}

// CohortFrom returns the cohort stored by ValidateCohort.
func CohortFrom(c *fiber.Ctx) string {
	cohort, _ := c.Locals(LocalsCohort).(string)
	return cohort
}
