package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/beesaferoot/blog-api/internal/handlers"
	"github.com/beesaferoot/blog-api/internal/migration"
)

func setupTestAPI(t *testing.T) *http.ServeMux {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and makes the
	// foreign_keys pragma apply to every statement.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, migration.RunAll(db))

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, handlers.New(db))
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func createAuthor(t *testing.T, mux *http.ServeMux, name, email string) uint {
	t.Helper()

	rec := doRequest(t, mux, http.MethodPost, "/authors", map[string]any{
		"name":  name,
		"email": email,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var author struct {
		ID uint `json:"id"`
	}
	decodeBody(t, rec, &author)
	return author.ID
}

func createPost(t *testing.T, mux *http.ServeMux, title, content string, authorID uint) uint {
	t.Helper()

	rec := doRequest(t, mux, http.MethodPost, "/posts", map[string]any{
		"title":     title,
		"content":   content,
		"author_id": authorID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var post struct {
		ID uint `json:"id"`
	}
	decodeBody(t, rec, &post)
	return post.ID
}
