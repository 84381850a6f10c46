package handlers

import "net/http"

// RegisterRoutes wires every API route into the provided mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /authors", h.CreateAuthor)
	mux.HandleFunc("GET /authors", h.ListAuthors)
	mux.HandleFunc("GET /authors/{id}", h.GetAuthor)
	mux.HandleFunc("PUT /authors/{id}", h.UpdateAuthor)
	mux.HandleFunc("DELETE /authors/{id}", h.DeleteAuthor)
	mux.HandleFunc("GET /authors/{id}/posts", h.ListAuthorPosts)

	mux.HandleFunc("POST /posts", h.CreatePost)
	mux.HandleFunc("GET /posts", h.ListPosts)
	mux.HandleFunc("GET /posts/{id}", h.GetPost)
	mux.HandleFunc("PUT /posts/{id}", h.UpdatePost)
	mux.HandleFunc("DELETE /posts/{id}", h.DeletePost)
}
