package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/velorahq/veloracrm/app/controllers"
	"github.com/velorahq/veloracrm/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "VeloraCRM API",
		})
	})

	v1 := api.Group("/v1")

	subscription := v1.Group("/subscription")
	subscription.Get("/plans", controllers.HandleListPlans)
	subscription.Get("/plans/:id", controllers.HandleGetPlan)
	subscription.Post("/subscribe", controllers.HandleSubscribe)
	subscription.Get("/company/:id", controllers.HandleGetCompanySubscription)
	subscription.Post("/company/:id/cancel", controllers.HandleCancelSubscription)
	subscription.Get("/features", controllers.HandleListFeatures)
	subscription.Get("/company/:id/features", controllers.HandleCompanyFeatures)
	subscription.Post("/billing", controllers.HandleCreateBillingRecord)
	subscription.Get("/company/:id/billing", controllers.HandleBillingHistory)
	subscription.Post("/company/:id/update-user-count", controllers.HandleUpdateUserCount)

	admin := subscription.Group("/admin", middleware.AdminKeyMiddleware())
	admin.Post("/plans", controllers.HandleCreatePlan)
	admin.Post("/initialize-plans", controllers.HandleInitializePlans)
	admin.Post("/initialize-features", controllers.HandleInitializeFeatures)

	onboarding := v1.Group("/onboarding")
	onboarding.Post("/", controllers.HandleOnboarding)
	onboarding.Get("/plans", controllers.HandleOnboardingPlans)

	users := v1.Group("/users")
	users.Post("/", controllers.HandleCreateUser)
	users.Get("/:id", controllers.HandleGetUser)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
