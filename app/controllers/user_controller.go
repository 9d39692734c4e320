package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/velorahq/veloracrm/app/models"
	"github.com/velorahq/veloracrm/app/repository"
	"gorm.io/gorm"
)

type createUserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CompanyID *uint  `json:"company_id"`
}

// HandleCreateUser creates a user seat. Adding a seat changes the company's
// live user count, so the cached entitlement view is invalidated.
func HandleCreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid request body"})
	}

	repos := repository.GetGlobalRepositories()

	if _, err := repos.User.GetByEmail(req.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "conflict", "message": "email already registered"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return jsonError(c, err)
	}

	user, err := models.CreateUser(req.Name, req.Email, req.Password, req.CompanyID)
	if err != nil {
		return jsonError(c, err)
	}
	if err := repos.User.Create(user); err != nil {
		return jsonError(c, err)
	}

	if user.CompanyID != nil {
		entitlementResolver().Invalidate(*user.CompanyID)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleGetUser returns one user by id.
func HandleGetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid user id"})
	}

	user, err := repository.GetGlobalRepositories().User.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "user not found"})
		}
		return jsonError(c, err)
	}
	return c.JSON(user)
}
