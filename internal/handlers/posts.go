package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/beesaferoot/blog-api/internal/models"
	"github.com/beesaferoot/blog-api/internal/schemas"
)

// CreatePost inserts a new post after verifying the referenced author exists.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in schemas.PostCreate
	if !h.bindJSON(w, r, &in) {
		return
	}

	var count int64
	if err := h.db.Model(&models.Author{}).Where("id = ?", in.AuthorID).Count(&count).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if count == 0 {
		writeDetail(w, http.StatusBadRequest, "Author ID does not exist")
		return
	}

	post := models.Post{Title: in.Title, Content: in.Content, AuthorID: in.AuthorID}
	if err := h.db.Create(&post).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, schemas.NewPostResponse(post))
}

// ListPosts returns all posts, optionally filtered to one author via the
// author_id query parameter.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	query := h.db.Model(&models.Post{})
	if raw := r.URL.Query().Get("author_id"); raw != "" {
		authorID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "author_id must be an integer")
			return
		}
		query = query.Where("author_id = ?", authorID)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, schemas.NewPostResponses(posts))
}

// GetPost returns a post with its author embedded. The author is fetched in
// the same query via a join to avoid a second round-trip.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var post models.Post
	if err := h.db.Joins("Author").First(&post, "posts.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeDetail(w, http.StatusNotFound, "Post not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, schemas.NewPostDetailResponse(post))
}

// UpdatePost replaces a post's title and content wholesale. The author_id in
// the payload is ignored: reassignment is not supported.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in schemas.PostCreate
	if !h.bindJSON(w, r, &in) {
		return
	}

	var post models.Post
	if err := h.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeDetail(w, http.StatusNotFound, "Post not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	post.Title = in.Title
	post.Content = in.Content
	if err := h.db.Save(&post).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.db.First(&post, id).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, schemas.NewPostResponse(post))
}

// DeletePost removes a single post.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var post models.Post
	if err := h.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeDetail(w, http.StatusNotFound, "Post not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.db.Delete(&post).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "Post deleted"})
}
