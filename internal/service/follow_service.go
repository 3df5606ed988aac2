package service

import (
	"context"

	"plume/internal/models"
	"plume/internal/repository"
)

// FollowService maintains the directed follow relation between users.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the edge from the caller to the named author. Following
// yourself and following an already-followed author are both silent
// no-ops; calling twice has the same effect as calling once.
func (s *FollowService) Follow(ctx context.Context, followerID uint, authorUsername string) error {
	if followerID == 0 {
		return models.NewUnauthorizedError("Authentication required to follow")
	}

	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author.ID == followerID {
		return nil
	}

	return s.followRepo.Follow(ctx, followerID, author.ID)
}

// Unfollow removes the edge from the caller to the named author. A
// missing edge is a no-op, not an error.
func (s *FollowService) Unfollow(ctx context.Context, followerID uint, authorUsername string) error {
	if followerID == 0 {
		return models.NewUnauthorizedError("Authentication required to unfollow")
	}

	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}

	return s.followRepo.Unfollow(ctx, followerID, author.ID)
}

// IsFollowing reports whether follower follows the author. Anonymous
// callers never follow anyone.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, authorID uint) (bool, error) {
	if followerID == 0 {
		return false, nil
	}
	return s.followRepo.IsFollowing(ctx, followerID, authorID)
}

// FollowCounts returns the follower and following counts for a user.
func (s *FollowService) FollowCounts(ctx context.Context, userID uint) (followers, following int64, err error) {
	followers, err = s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	following, err = s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}
