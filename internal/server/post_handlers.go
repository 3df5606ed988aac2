package server

import (
	"plume/internal/models"
	"plume/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Text  string `json:"text" form:"text"`
	Group string `json:"group" form:"group"`
}

type commentRequest struct {
	Text string `json:"text" form:"text"`
}

// PostDetail serves a single post with its comments and the author's total
// post count.
func (s *Server) PostDetail(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	post, comments, err := s.postService.GetDetail(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}

	_, authorPosts, err := s.feedService.ListByAuthor(c.Context(), post.Author.Username, "1")
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":              post,
		"comments":          comments,
		"author_post_count": authorPosts.Page.TotalItems,
	})
}

// CreatePostForm serves the data needed to render the post form.
func (s *Server) CreatePostForm(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

// CreatePost creates a post for the current user and returns to their
// profile.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	_, err := s.postService.Create(c.Context(), service.CreatePostInput{
		AuthorID:  userID,
		Text:      req.Text,
		GroupSlug: req.Group,
	})
	if err != nil {
		return respondError(c, err)
	}

	author, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Redirect(profilePath(author.Username), fiber.StatusFound)
}

// EditPostForm serves the current state of a post for editing. Non-authors
// are bounced to the post detail page.
func (s *Server) EditPostForm(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}
	if post.AuthorID != currentUserID(c) {
		return c.Redirect(postPath(postID), fiber.StatusFound)
	}

	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"post":   post,
		"groups": groups,
	})
}

// EditPost updates a post's text and group. Only the author may edit;
// anyone else is redirected to the post without any change being applied.
func (s *Server) EditPost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	_, err = s.postService.Update(c.Context(), service.UpdatePostInput{
		UserID:    currentUserID(c),
		PostID:    postID,
		Text:      req.Text,
		GroupSlug: req.Group,
	})
	if err != nil {
		if models.IsCode(err, models.CodeForbidden) {
			return c.Redirect(postPath(postID), fiber.StatusFound)
		}
		return respondError(c, err)
	}
	return c.Redirect(postPath(postID), fiber.StatusFound)
}

// DeletePost removes the current user's post along with its comments and
// returns to their profile.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	userID := currentUserID(c)
	if err := s.postService.Delete(c.Context(), userID, postID); err != nil {
		if models.IsCode(err, models.CodeForbidden) {
			return c.Redirect(postPath(postID), fiber.StatusFound)
		}
		return respondError(c, err)
	}

	author, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Redirect(profilePath(author.Username), fiber.StatusFound)
}

// AddComment attaches a comment to a post and returns to its detail page.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if _, err := s.commentService.AddComment(c.Context(), currentUserID(c), postID, req.Text); err != nil {
		return respondError(c, err)
	}
	return c.Redirect(postPath(postID), fiber.StatusFound)
}
