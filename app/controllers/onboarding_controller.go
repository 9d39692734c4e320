package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/velorahq/veloracrm/internal/pkg/billing"
)

type onboardingRequest struct {
	billing.CompanyProfile
	PlanID *uint `json:"plan_id"`
}

// HandleOnboarding creates a company and optionally attaches the chosen
// plan. Company creation succeeds even when the plan attachment fails; the
// response flags which part went through.
func HandleOnboarding(c *fiber.Ctx) error {
	var req onboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid request body"})
	}

	result, err := billingService().OnboardCompanyWithPlan(c.Context(), req.CompanyProfile, req.PlanID)
	if err != nil {
		return jsonError(c, err)
	}

	if result.SubscriptionCreated {
		entitlementResolver().Invalidate(result.Company.ID)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"company":              result.Company,
		"subscription":         result.Subscription,
		"subscription_created": result.SubscriptionCreated,
	})
}

// HandleOnboardingPlans returns the plans shown during onboarding. Same
// catalog as the subscription listing, exposed under the onboarding prefix
// so the signup flow needs no second API surface.
func HandleOnboardingPlans(c *fiber.Ctx) error {
	plans, err := billingService().ListActivePlans(c.Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(plans)
}
