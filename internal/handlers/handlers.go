// Package handlers implements one HTTP handler per API endpoint. Each handler
// is a stateless pipeline: decode and validate input, check business rules,
// query or mutate through GORM, map to a response schema.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Handler carries the shared database handle and validator for all endpoints.
type Handler struct {
	db       *gorm.DB
	validate *validator.Validate
}

func New(db *gorm.DB) *Handler {
	return &Handler{
		db:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type detailBody struct {
	Detail string `json:"detail"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailBody{Detail: detail})
}

// bindJSON decodes the request body into dst and validates it. Shape errors
// are reported as 422 before any handler logic runs.
func (h *Handler) bindJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

// pathID parses the {id} path segment. A non-integer id is an input-shape
// error, not a missing resource.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "id must be an integer")
		return 0, false
	}
	return uint(id), true
}
