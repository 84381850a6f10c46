package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/beesaferoot/blog-api/internal/models"
	"github.com/beesaferoot/blog-api/internal/schemas"
)

// CreateAuthor inserts a new author. Emails are unique across all authors.
func (h *Handler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var in schemas.AuthorCreate
	if !h.bindJSON(w, r, &in) {
		return
	}

	var count int64
	if err := h.db.Model(&models.Author{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if count > 0 {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}

	author := models.Author{Name: in.Name, Email: in.Email}
	if err := h.db.Create(&author).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, schemas.NewAuthorResponse(author))
}

// ListAuthors returns all authors, unfiltered.
func (h *Handler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	var authors []models.Author
	if err := h.db.Find(&authors).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, schemas.NewAuthorResponses(authors))
}

// GetAuthor returns a single author by id.
func (h *Handler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var author models.Author
	if err := h.db.First(&author, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeDetail(w, http.StatusNotFound, "Author not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, schemas.NewAuthorResponse(author))
}

// UpdateAuthor replaces an author's name and email wholesale. Email
// uniqueness is not re-checked here; the unique index still rejects a
// conflicting value.
func (h *Handler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in schemas.AuthorCreate
	if !h.bindJSON(w, r, &in) {
		return
	}

	var author models.Author
	if err := h.db.First(&author, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeDetail(w, http.StatusNotFound, "Author not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	author.Name = in.Name
	author.Email = in.Email
	if err := h.db.Save(&author).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.db.First(&author, id).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, schemas.NewAuthorResponse(author))
}

// DeleteAuthor removes an author. The cascade foreign key removes every post
// referencing the author in the same transaction.
func (h *Handler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var author models.Author
	if err := h.db.First(&author, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeDetail(w, http.StatusNotFound, "Author not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.db.Delete(&author).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "Author and associated posts deleted"})
}

// ListAuthorPosts returns the posts belonging to one author.
func (h *Handler) ListAuthorPosts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var author models.Author
	if err := h.db.First(&author, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeDetail(w, http.StatusNotFound, "Author not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	var posts []models.Post
	if err := h.db.Where("author_id = ?", id).Find(&posts).Error; err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, schemas.NewPostResponses(posts))
}
