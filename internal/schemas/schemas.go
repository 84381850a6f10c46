// Package schemas defines the request and response payload shapes for the
// HTTP API, independent of the storage representation.
package schemas

import "github.com/beesaferoot/blog-api/internal/models"

// AuthorCreate is the payload for creating or replacing an author.
type AuthorCreate struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
}

// PostCreate is the payload for creating or replacing a post.
type PostCreate struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	AuthorID uint   `json:"author_id" validate:"required"`
}

type AuthorResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PostResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID uint   `json:"author_id"`
}

// PostDetailResponse is a post with its author embedded, used only by the
// single-post endpoint.
type PostDetailResponse struct {
	PostResponse
	Author AuthorResponse `json:"author"`
}

func NewAuthorResponse(a models.Author) AuthorResponse {
	return AuthorResponse{ID: a.ID, Name: a.Name, Email: a.Email}
}

func NewPostResponse(p models.Post) PostResponse {
	return PostResponse{ID: p.ID, Title: p.Title, Content: p.Content, AuthorID: p.AuthorID}
}

func NewPostDetailResponse(p models.Post) PostDetailResponse {
	detail := PostDetailResponse{PostResponse: NewPostResponse(p)}
	if p.Author != nil {
		detail.Author = NewAuthorResponse(*p.Author)
	}
	return detail
}

// NewAuthorResponses maps a result set, returning an empty (non-nil) slice so
// empty lists serialize as [].
func NewAuthorResponses(authors []models.Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, NewAuthorResponse(a))
	}
	return out
}

func NewPostResponses(posts []models.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p))
	}
	return out
}
