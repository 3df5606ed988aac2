package server

import (
	"github.com/gofiber/fiber/v2"
)

// Profile serves an author's page: their posts, post count, follower counts
// and whether the current viewer follows them.
func (s *Server) Profile(c *fiber.Ctx) error {
	ctx := c.Context()
	author, page, err := s.feedService.ListByAuthor(ctx, c.Params("username"), c.Query("page"))
	if err != nil {
		return respondError(c, err)
	}

	followers, following, err := s.followService.FollowCounts(ctx, author.ID)
	if err != nil {
		return respondError(c, err)
	}

	isFollowing, err := s.followService.IsFollowing(ctx, currentUserID(c), author.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"author":       author,
		"posts":        page.Posts,
		"page":         page.Page,
		"post_count":   page.Page.TotalItems,
		"followers":    followers,
		"following":    following,
		"is_following": isFollowing,
	})
}

// FollowAuthor subscribes the current user to an author and returns to the
// author's profile. Refollowing and following yourself are silent no-ops.
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := s.followService.Follow(c.Context(), currentUserID(c), username); err != nil {
		return respondError(c, err)
	}
	return c.Redirect(profilePath(username), fiber.StatusFound)
}

// UnfollowAuthor removes the subscription and returns to the profile.
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := s.followService.Unfollow(c.Context(), currentUserID(c), username); err != nil {
		return respondError(c, err)
	}
	return c.Redirect(profilePath(username), fiber.StatusFound)
}
