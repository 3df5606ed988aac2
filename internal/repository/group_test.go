package repository

import (
	"context"
	"testing"
	"time"

	"plume/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepository_GetBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	createGroup(t, db, "cats")

	group, err := repo.GetBySlug(ctx, "cats")
	require.NoError(t, err)
	assert.Equal(t, "cats", group.Slug)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestGroupRepository_DeleteClearsPostReferences(t *testing.T) {
	db := setupTestDB(t)
	groups := NewGroupRepository(db)
	posts := NewPostRepository(db, 0)
	ctx := context.Background()

	author := createUser(t, db, "author")
	group := createGroup(t, db, "doomed")
	post := seedPost(t, db, author.ID, &group.ID, "survives", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, groups.Delete(ctx, group.ID))

	got, err := posts.GetByID(ctx, post.ID)
	require.NoError(t, err, "the post outlives its group")
	assert.Nil(t, got.GroupID, "the group reference is cleared, not cascaded")
	assert.Equal(t, "survives", got.Text)
}

func TestGroupRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	createGroup(t, db, "b-side")
	createGroup(t, db, "a-side")

	groups, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "a-side", groups[0].Title)
}
