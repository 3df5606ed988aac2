package server

import (
	"fmt"
	"strconv"

	"plume/internal/middleware"
	"plume/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the authenticated user's ID, or 0 for anonymous
// requests.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// parseIDParam parses a numeric route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}

// respondError maps domain errors onto HTTP responses. Unauthorized errors
// become a redirect to the login page; everything else is a JSON error with
// the matching status code.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if models.IsCode(err, models.CodeNotFound) {
		status = fiber.StatusNotFound
	} else if models.IsCode(err, models.CodeValidation) {
		status = fiber.StatusBadRequest
	} else if models.IsCode(err, models.CodeForbidden) {
		status = fiber.StatusForbidden
	} else if models.IsCode(err, models.CodeUnauthorized) {
		return middleware.RedirectToLogin(c)
	}
	return models.RespondWithError(c, status, err)
}

func profilePath(username string) string {
	return "/profile/" + username + "/"
}

func postPath(id uint) string {
	return fmt.Sprintf("/posts/%d/", id)
}
