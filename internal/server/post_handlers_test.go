package server

import (
	"fmt"
	"net/http"
	"testing"

	"agora/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/posts", map[string]string{
		"topic": "t", "content": "c", "community": "Food",
	}, "")
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreatePostValidation(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "poster")

	cases := []struct {
		name string
		body map[string]string
	}{
		{"missing topic", map[string]string{"content": "c", "community": "Food"}},
		{"missing content", map[string]string{"topic": "t", "community": "Food"}},
		{"bad community", map[string]string{"topic": "t", "content": "c", "community": "Gossip"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/v1/posts", tc.body, token)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestListPostsPagination(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "paginator")

	for i := 0; i < 5; i++ {
		createPost(t, app, token, fmt.Sprintf("topic %d", i), "History")
	}

	t.Run("first page", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/posts?page=1&size=2", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Data models.PostPage `json:"data"`
		}
		decodeBody(t, resp, &out)
		assert.Len(t, out.Data.Items, 2)
		assert.EqualValues(t, 5, out.Data.TotalItems)
		assert.Equal(t, 3, out.Data.TotalPages)
		require.NotNil(t, out.Data.Items[0].Author)
		assert.Equal(t, "paginator", out.Data.Items[0].Author.Username)
	})

	t.Run("page past the end is empty but keeps totals", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/posts?page=9&size=2", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Data models.PostPage `json:"data"`
		}
		decodeBody(t, resp, &out)
		assert.Empty(t, out.Data.Items)
		assert.EqualValues(t, 5, out.Data.TotalItems)
		assert.Equal(t, 3, out.Data.TotalPages)
	})

	t.Run("invalid page and size rejected", func(t *testing.T) {
		for _, query := range []string{"page=0&size=10", "page=1&size=0", "page=1&size=1001"} {
			resp := doJSON(t, app, http.MethodGet, "/api/v1/posts?"+query, nil, "")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, query)
			_ = resp.Body.Close()
		}
	})

	t.Run("community filter", func(t *testing.T) {
		createPost(t, app, token, "workout log", "Exercise")

		resp := doJSON(t, app, http.MethodGet, "/api/v1/posts?page=1&size=10&community=Exercise", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Data models.PostPage `json:"data"`
		}
		decodeBody(t, resp, &out)
		require.Len(t, out.Data.Items, 1)
		assert.Equal(t, "workout log", out.Data.Items[0].Topic)
	})

	t.Run("isOwner without auth rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/posts?page=1&size=10&isOwner=true", nil, "")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("isOwner scopes to the caller", func(t *testing.T) {
		other := registerAndLogin(t, app, "other_author")
		createPost(t, app, other, "someone else", "History")

		resp := doJSON(t, app, http.MethodGet, "/api/v1/posts?page=1&size=100&isOwner=true", nil, other)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Data models.PostPage `json:"data"`
		}
		decodeBody(t, resp, &out)
		require.Len(t, out.Data.Items, 1)
		assert.Equal(t, "someone else", out.Data.Items[0].Topic)
	})
}

func TestGetPostDetail(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "detailer")
	postID := createPost(t, app, token, "detailed topic", "Pets")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/comments", map[string]any{
		"post_id": postID, "message": "first!",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", postID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data models.Post `json:"data"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, "detailed topic", out.Data.Topic)
	require.NotNil(t, out.Data.Author)
	assert.Equal(t, "detailer", out.Data.Author.Username)
	require.Len(t, out.Data.Comments, 1)
	assert.Equal(t, "first!", out.Data.Comments[0].Message)
	require.NotNil(t, out.Data.Comments[0].Author)
	assert.EqualValues(t, 1, out.Data.CommentCount)

	t.Run("missing post", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/posts/99999", nil, "")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("bad id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/posts/abc", nil, "")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdatePostOwnership(t *testing.T) {
	app := newTestApp(t)
	owner := registerAndLogin(t, app, "owner")
	intruder := registerAndLogin(t, app, "intruder")
	postID := createPost(t, app, owner, "original", "Fashion")

	body := map[string]string{"topic": "rewritten", "content": "new", "community": "Fashion"}

	t.Run("non-owner sees not found", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/posts/%d", postID), body, intruder)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("owner updates", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/posts/%d", postID), body, owner)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Data models.Post `json:"data"`
		}
		decodeBody(t, resp, &out)
		assert.Equal(t, "rewritten", out.Data.Topic)
	})
}

func TestDeletePostCascades(t *testing.T) {
	app := newTestApp(t)
	owner := registerAndLogin(t, app, "cascade_owner")
	other := registerAndLogin(t, app, "commenter")
	postID := createPost(t, app, owner, "to delete", "Others")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/comments", map[string]any{
		"post_id": postID, "message": "going down with the ship",
	}, other)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	t.Run("non-owner cannot delete", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", postID), nil, other)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("owner deletes", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", postID), nil, owner)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("post is gone", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", postID), nil, "")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
