package server

import (
	"github.com/gofiber/fiber/v2"
)

// Index serves the home feed with all posts, newest first.
func (s *Server) Index(c *fiber.Ctx) error {
	page, err := s.feedService.ListAll(c.Context(), c.Query("page"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// FollowingFeed serves posts by authors the current user follows.
func (s *Server) FollowingFeed(c *fiber.Ctx) error {
	page, err := s.feedService.ListFollowing(c.Context(), currentUserID(c), c.Query("page"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}
