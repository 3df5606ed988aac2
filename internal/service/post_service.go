package service

import (
	"context"
	"strings"

	"plume/internal/models"
	"plume/internal/repository"
)

// PostService handles post creation and author-only mutation.
type PostService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	commentRepo repository.CommentRepository
}

// NewPostService returns a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	commentRepo repository.CommentRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
	}
}

// CreatePostInput carries the fields of a post submission. GroupSlug is
// optional; empty means no group.
type CreatePostInput struct {
	AuthorID  uint
	Text      string
	GroupSlug string
}

// UpdatePostInput carries an edit submission. The form always submits the
// full state, so an empty GroupSlug clears the group reference.
type UpdatePostInput struct {
	UserID    uint
	PostID    uint
	Text      string
	GroupSlug string
}

// resolveGroupID maps an optional group slug to its ID. An unknown slug is
// a validation error so the form re-renders instead of 404ing.
func (s *PostService) resolveGroupID(ctx context.Context, slug string) (*uint, error) {
	if slug == "" {
		return nil, nil
	}
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if models.IsCode(err, models.CodeNotFound) {
			return nil, models.NewValidationError("Unknown group: " + slug)
		}
		return nil, err
	}
	return &group.ID, nil
}

// Create validates and persists a new post for the author.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.AuthorID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required to publish")
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Post text must not be empty")
	}

	groupID, err := s.resolveGroupID(ctx, in.GroupSlug)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     in.Text,
		AuthorID: in.AuthorID,
		GroupID:  groupID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// Update applies an edit if and only if the caller authored the post. A
// failed check leaves the post untouched.
func (s *PostService) Update(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("Only the author may edit a post")
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Post text must not be empty")
	}

	groupID, err := s.resolveGroupID(ctx, in.GroupSlug)
	if err != nil {
		return nil, err
	}

	post.Text = in.Text
	post.GroupID = groupID
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// Delete removes a post, and with it its comments, if and only if the
// caller authored it.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return models.NewForbiddenError("Only the author may delete a post")
	}
	return s.postRepo.Delete(ctx, postID)
}

// GetDetail returns a post together with its comments, newest first.
func (s *PostService) GetDetail(ctx context.Context, postID uint) (*models.Post, []models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}
