package service

import (
	"context"

	"plume/internal/models"
	"plume/internal/pagination"
	"plume/internal/repository"
)

// PostPage is one page of a post listing together with its pagination state.
type PostPage struct {
	Posts []*models.Post  `json:"posts"`
	Page  pagination.Page `json:"page"`
}

// FeedService assembles paginated post listings.
type FeedService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	pageSize  int
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	pageSize int,
) *FeedService {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	return &FeedService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		pageSize:  pageSize,
	}
}

// ListAll returns one page of the global feed, newest first.
func (s *FeedService) ListAll(ctx context.Context, pageQuery string) (*PostPage, error) {
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	page := pagination.New(int(total), s.pageSize, pageQuery)
	posts, err := s.postRepo.List(ctx, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: posts, Page: page}, nil
}

// ListByGroup resolves a group by slug and returns one page of its posts.
func (s *FeedService) ListByGroup(ctx context.Context, slug, pageQuery string) (*models.Group, *PostPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}
	page := pagination.New(int(total), s.pageSize, pageQuery)
	posts, err := s.postRepo.ListByGroup(ctx, group.ID, page.Size, page.Offset())
	if err != nil {
		return nil, nil, err
	}
	return group, &PostPage{Posts: posts, Page: page}, nil
}

// ListByAuthor resolves a user by username and returns one page of their posts.
func (s *FeedService) ListByAuthor(ctx context.Context, username, pageQuery string) (*models.User, *PostPage, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, nil, err
	}
	page := pagination.New(int(total), s.pageSize, pageQuery)
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, page.Size, page.Offset())
	if err != nil {
		return nil, nil, err
	}
	return author, &PostPage{Posts: posts, Page: page}, nil
}

// ListFollowing returns one page of posts by authors the user follows.
func (s *FeedService) ListFollowing(ctx context.Context, userID uint, pageQuery string) (*PostPage, error) {
	if userID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	total, err := s.postRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	page := pagination.New(int(total), s.pageSize, pageQuery)
	posts, err := s.postRepo.ListFollowing(ctx, userID, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: posts, Page: page}, nil
}
