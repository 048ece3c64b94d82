package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentmatch/job-matcher/internal/models"
	"talentmatch/job-matcher/internal/repositories"
	"talentmatch/job-matcher/internal/services"
)

const currentUserKey = "currentUser"

// RequireAuth validates the bearer token and loads the authenticated user
// into the request locals. Inactive accounts are rejected.
func RequireAuth(auth services.AuthService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or malformed authorization header",
			})
		}

		userID, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Account is deactivated",
			})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// RequireRecruiter rejects non-recruiter accounts. Must run after RequireAuth.
func RequireRecruiter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.IsRecruiter {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Only recruiters can access this resource",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the user loaded by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
