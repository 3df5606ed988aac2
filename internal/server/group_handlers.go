package server

import (
	"github.com/gofiber/fiber/v2"
)

// GroupPosts serves a group's page of posts. Unknown slugs are a 404.
func (s *Server) GroupPosts(c *fiber.Ctx) error {
	group, page, err := s.feedService.ListByGroup(c.Context(), c.Params("slug"), c.Query("page"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"group": group,
		"posts": page.Posts,
		"page":  page.Page,
	})
}
