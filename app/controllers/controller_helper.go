package controllers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/velorahq/veloracrm/app/repository"
	"github.com/velorahq/veloracrm/internal/pkg/billing"
	"github.com/velorahq/veloracrm/internal/pkg/entitlements"
)

// billingService builds a request-scoped billing service over the global
// repositories.
func billingService() *billing.Service {
	return billing.NewService(repository.GetGlobalRepositories())
}

// entitlementResolver builds the cached entitlement resolver over the global
// repositories.
func entitlementResolver() *entitlements.CachedResolver {
	return entitlements.NewCachedResolver(entitlements.NewResolver(repository.GetGlobalRepositories()))
}

// jsonError maps service errors onto HTTP responses: not-found and conflict
// conditions keep their message, validation errors become 400, everything
// else is logged and hidden behind a generic 500.
func jsonError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, billing.ErrPlanNotFound),
		errors.Is(err, billing.ErrSubscriptionNotFound),
		errors.Is(err, billing.ErrCompanyNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": err.Error()})
	case errors.Is(err, billing.ErrPlanNameTaken),
		errors.Is(err, billing.ErrActiveSubscriptionExists),
		errors.Is(err, billing.ErrPlanInactive):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "conflict", "message": err.Error()})
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
	}

	log.Printf("request failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error"})
}

// companyIDParam reads the :id route parameter as a company id.
func companyIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid company id")
	}
	return uint(id), nil
}
