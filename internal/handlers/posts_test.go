package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beesaferoot/blog-api/internal/schemas"
)

func TestCreatePost(t *testing.T) {
	mux := setupTestAPI(t)
	adaID := createAuthor(t, mux, "Ada", "ada@example.com")

	rec := doRequest(t, mux, http.MethodPost, "/posts", map[string]any{
		"title":     "Hi",
		"content":   "World",
		"author_id": adaID,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var post schemas.PostResponse
	decodeBody(t, rec, &post)
	assert.NotZero(t, post.ID)
	assert.Equal(t, "Hi", post.Title)
	assert.Equal(t, "World", post.Content)
	assert.Equal(t, adaID, post.AuthorID)
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	mux := setupTestAPI(t)

	rec := doRequest(t, mux, http.MethodPost, "/posts", map[string]any{
		"title":     "Orphan",
		"content":   "no author",
		"author_id": 99,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "Author ID does not exist", body.Detail)

	// No post row was created.
	list := doRequest(t, mux, http.MethodGet, "/posts", nil)
	assert.JSONEq(t, "[]", list.Body.String())
}

func TestCreatePostValidation(t *testing.T) {
	mux := setupTestAPI(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"content": "body", "author_id": 1}},
		{"missing content", map[string]any{"title": "Hi", "author_id": 1}},
		{"missing author_id", map[string]any{"title": "Hi", "content": "body"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, mux, http.MethodPost, "/posts", tc.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestListPostsFilterByAuthor(t *testing.T) {
	mux := setupTestAPI(t)
	adaID := createAuthor(t, mux, "Ada", "ada@example.com")
	bobID := createAuthor(t, mux, "Bob", "bob@example.com")

	createPost(t, mux, "Ada one", "content", adaID)
	createPost(t, mux, "Ada two", "content", adaID)
	createPost(t, mux, "Bob one", "content", bobID)

	rec := doRequest(t, mux, http.MethodGet, "/posts", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var all []schemas.PostResponse
	decodeBody(t, rec, &all)
	assert.Len(t, all, 3)

	rec = doRequest(t, mux, http.MethodGet, fmt.Sprintf("/posts?author_id=%d", adaID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var filtered []schemas.PostResponse
	decodeBody(t, rec, &filtered)
	assert.Len(t, filtered, 2)
	for _, p := range filtered {
		assert.Equal(t, adaID, p.AuthorID)
	}

	// Repeated identical reads are stable.
	again := doRequest(t, mux, http.MethodGet, fmt.Sprintf("/posts?author_id=%d", adaID), nil)
	assert.Equal(t, rec.Body.String(), again.Body.String())
}

func TestListPostsInvalidFilter(t *testing.T) {
	mux := setupTestAPI(t)

	rec := doRequest(t, mux, http.MethodGet, "/posts?author_id=abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetPostDetailed(t *testing.T) {
	mux := setupTestAPI(t)
	adaID := createAuthor(t, mux, "Ada", "ada@example.com")
	postID := createPost(t, mux, "Hi", "World", adaID)

	rec := doRequest(t, mux, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var detail schemas.PostDetailResponse
	decodeBody(t, rec, &detail)
	assert.Equal(t, postID, detail.ID)
	assert.Equal(t, "Hi", detail.Title)
	assert.Equal(t, "World", detail.Content)
	assert.Equal(t, adaID, detail.AuthorID)

	// The embedded author equals a direct author fetch.
	direct := doRequest(t, mux, http.MethodGet, fmt.Sprintf("/authors/%d", adaID), nil)
	var author schemas.AuthorResponse
	decodeBody(t, direct, &author)
	assert.Equal(t, author, detail.Author)
}

func TestGetPostNotFound(t *testing.T) {
	mux := setupTestAPI(t)

	rec := doRequest(t, mux, http.MethodGet, "/posts/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "Post not found", body.Detail)
}

func TestUpdatePost(t *testing.T) {
	mux := setupTestAPI(t)
	adaID := createAuthor(t, mux, "Ada", "ada@example.com")
	bobID := createAuthor(t, mux, "Bob", "bob@example.com")
	postID := createPost(t, mux, "Hi", "World", adaID)

	// author_id in the payload is ignored: reassignment is unsupported.
	rec := doRequest(t, mux, http.MethodPut, fmt.Sprintf("/posts/%d", postID), map[string]any{
		"title":     "Updated",
		"content":   "New content",
		"author_id": bobID,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var post schemas.PostResponse
	decodeBody(t, rec, &post)
	assert.Equal(t, "Updated", post.Title)
	assert.Equal(t, "New content", post.Content)
	assert.Equal(t, adaID, post.AuthorID)
}

func TestUpdatePostNotFound(t *testing.T) {
	mux := setupTestAPI(t)
	adaID := createAuthor(t, mux, "Ada", "ada@example.com")

	rec := doRequest(t, mux, http.MethodPut, "/posts/99", map[string]any{
		"title":     "Ghost",
		"content":   "missing",
		"author_id": adaID,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePost(t *testing.T) {
	mux := setupTestAPI(t)
	adaID := createAuthor(t, mux, "Ada", "ada@example.com")
	postID := createPost(t, mux, "Hi", "World", adaID)

	rec := doRequest(t, mux, http.MethodDelete, fmt.Sprintf("/posts/%d", postID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "Post deleted", body.Message)

	get := doRequest(t, mux, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil)
	assert.Equal(t, http.StatusNotFound, get.Code)

	// The author is unaffected.
	author := doRequest(t, mux, http.MethodGet, fmt.Sprintf("/authors/%d", adaID), nil)
	assert.Equal(t, http.StatusOK, author.Code)
}

func TestDeletePostNotFound(t *testing.T) {
	mux := setupTestAPI(t)

	rec := doRequest(t, mux, http.MethodDelete, "/posts/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEndToEndScenario(t *testing.T) {
	mux := setupTestAPI(t)

	adaID := createAuthor(t, mux, "Ada", "ada@example.com")
	postID := createPost(t, mux, "Hi", "World", adaID)

	rec := doRequest(t, mux, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var detail schemas.PostDetailResponse
	decodeBody(t, rec, &detail)
	assert.Equal(t, "Hi", detail.Title)
	assert.Equal(t, "World", detail.Content)
	assert.Equal(t, adaID, detail.AuthorID)
	assert.Equal(t, "Ada", detail.Author.Name)
	assert.Equal(t, "ada@example.com", detail.Author.Email)

	del := doRequest(t, mux, http.MethodDelete, fmt.Sprintf("/authors/%d", adaID), nil)
	assert.Equal(t, http.StatusOK, del.Code)

	gone := doRequest(t, mux, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}
