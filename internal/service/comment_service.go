package service

import (
	"context"
	"strings"

	"plume/internal/models"
	"plume/internal/repository"
)

// CommentService handles comment creation. Comments are immutable once
// written; there is no edit or standalone delete path.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment validates and persists a comment on the given post.
func (s *CommentService) AddComment(ctx context.Context, userID, postID uint, text string) (*models.Comment, error) {
	if userID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required to comment")
	}
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Comment text must not be empty")
	}

	// The post must exist; commenting on a missing post is NotFound.
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: userID,
		Text:     text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
