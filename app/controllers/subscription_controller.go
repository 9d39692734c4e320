package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/velorahq/veloracrm/internal/pkg/billing"
)

type subscribeRequest struct {
	CompanyID uint `json:"company_id"`
	PlanID    uint `json:"plan_id"`
}

// HandleListPlans returns all active catalog plans.
func HandleListPlans(c *fiber.Ctx) error {
	plans, err := billingService().ListActivePlans(c.Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(plans)
}

// HandleGetPlan returns a single plan by id, active or not.
func HandleGetPlan(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid plan id"})
	}
	plan, err := billingService().GetPlan(c.Context(), uint(id))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(plan)
}

// HandleCreatePlan adds a new plan to the catalog (admin only).
func HandleCreatePlan(c *fiber.Ctx) error {
	var in billing.PlanInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid request body"})
	}
	plan, err := billingService().CreatePlan(c.Context(), in)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// HandleSubscribe puts a company on a plan.
func HandleSubscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid request body"})
	}
	if req.CompanyID == 0 || req.PlanID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "company_id and plan_id are required"})
	}

	sub, err := billingService().Subscribe(c.Context(), req.CompanyID, req.PlanID)
	if err != nil {
		return jsonError(c, err)
	}

	entitlementResolver().Invalidate(req.CompanyID)
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// HandleGetCompanySubscription returns the company's active subscription.
func HandleGetCompanySubscription(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}
	sub, err := billingService().ActiveSubscription(c.Context(), companyID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(sub)
}

// HandleCancelSubscription cancels the company's active subscription. The
// record is kept and current feature grants stay until replaced.
func HandleCancelSubscription(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}
	if _, err := billingService().Cancel(c.Context(), companyID); err != nil {
		return jsonError(c, err)
	}

	entitlementResolver().Invalidate(companyID)
	return c.JSON(fiber.Map{"message": "Subscription cancelled successfully"})
}

// HandleListFeatures returns the full feature registry.
func HandleListFeatures(c *fiber.Ctx) error {
	features, err := billingService().ListFeatures(c.Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(features)
}

// HandleCompanyFeatures resolves the company's entitlement view: granted
// features, plan label, seat limit and live seat usage.
func HandleCompanyFeatures(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}
	view, err := entitlementResolver().Resolve(c.Context(), companyID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(view)
}

// HandleCreateBillingRecord appends a billing history record.
func HandleCreateBillingRecord(c *fiber.Ctx) error {
	var in billing.BillingInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid request body"})
	}
	record, err := billingService().RecordBilling(c.Context(), in)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// HandleBillingHistory returns the company's billing records, newest first.
func HandleBillingHistory(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}
	records, err := billingService().ListBillingHistory(c.Context(), companyID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(records)
}

// HandleUpdateUserCount resyncs the subscription's advisory seat counter
// from the live user count.
func HandleUpdateUserCount(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}
	count, err := billingService().ResyncUserCount(c.Context(), companyID)
	if err != nil {
		return jsonError(c, err)
	}

	entitlementResolver().Invalidate(companyID)
	return c.JSON(fiber.Map{"message": "User count updated", "current_users": count})
}

// HandleInitializePlans seeds the built-in plan catalog (admin only).
func HandleInitializePlans(c *fiber.Ctx) error {
	inserted, err := billingService().SeedDefaultPlans(c.Context())
	if err != nil {
		return jsonError(c, err)
	}
	if inserted == 0 {
		return c.JSON(fiber.Map{"message": "Plans already initialized"})
	}

	// The new catalog can change any company's resolved view.
	entitlementResolver().InvalidateAll()
	return c.JSON(fiber.Map{"message": "Plans initialized", "count": inserted})
}

// HandleInitializeFeatures seeds the built-in feature registry (admin only).
func HandleInitializeFeatures(c *fiber.Ctx) error {
	inserted, err := billingService().SeedDefaultFeatures(c.Context())
	if err != nil {
		return jsonError(c, err)
	}
	if inserted == 0 {
		return c.JSON(fiber.Map{"message": "Features already initialized"})
	}

	// New registry entries move the core baseline for every fallback view.
	entitlementResolver().InvalidateAll()
	return c.JSON(fiber.Map{"message": "Features initialized", "count": inserted})
}
