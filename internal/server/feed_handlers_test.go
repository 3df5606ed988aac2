package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexNewestFirst(t *testing.T) {
	app, srv, db := setupServer(t)
	author, _ := signupUser(t, srv, db, "leo")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedPost(t, db, author, "older", base)
	seedPost(t, db, author, "newer", base.Add(time.Hour))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	posts := body["posts"].([]any)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].(map[string]any)["text"])
	assert.Equal(t, "older", posts[1].(map[string]any)["text"])
}

func TestIndexPagination(t *testing.T) {
	app, srv, db := setupServer(t)
	author, _ := signupUser(t, srv, db, "leo")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 19; i++ {
		seedPost(t, db, author, "post", base.Add(time.Duration(i)*time.Minute))
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?page=2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	posts := body["posts"].([]any)
	assert.Len(t, posts, 9)

	page := body["page"].(map[string]any)
	assert.Equal(t, float64(2), page["number"])
	assert.Equal(t, true, page["has_prev"])
	assert.Equal(t, false, page["has_next"])
}

func TestFollowingFeedRedirectsAnonymous(t *testing.T) {
	app, _, _ := setupServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/follow/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login/?next=%2Ffollow%2F", resp.Header.Get("Location"))
}

func TestFollowingFeedShowsOnlyFollowedAuthors(t *testing.T) {
	app, srv, db := setupServer(t)
	reader, token := signupUser(t, srv, db, "reader")
	followed, _ := signupUser(t, srv, db, "followed")
	stranger, _ := signupUser(t, srv, db, "stranger")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedPost(t, db, followed, "from followed", base)
	seedPost(t, db, stranger, "from stranger", base.Add(time.Minute))
	seedPost(t, db, reader, "my own", base.Add(2*time.Minute))

	followResp, err := app.Test(withToken(
		httptest.NewRequest(http.MethodPost, "/profile/followed/follow/", nil), token))
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, followResp.StatusCode)

	resp, err := app.Test(withToken(httptest.NewRequest(http.MethodGet, "/follow/", nil), token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	posts := body["posts"].([]any)
	require.Len(t, posts, 1)
	assert.Equal(t, "from followed", posts[0].(map[string]any)["text"])
}
