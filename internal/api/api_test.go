package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapi/internal/model"
	"todoapi/internal/store"
)

// doRequest runs a request through the fully wired router
func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestDeleteThenGetThenList(t *testing.T) {
	t.Parallel()

	r := NewRouter(store.NewTodoStore(store.Seed()...))

	// delete the second seeded todo
	rec := doRequest(t, r, http.MethodDelete, "/api/todos/2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var deleted model.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deleted))
	assert.Equal(t, model.Todo{ID: 2, Title: "Learn Angular"}, deleted)

	// the deleted id is gone
	rec = doRequest(t, r, http.MethodGet, "/api/todos/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Todo entity not found by id: 2", rec.Body.String())

	// remaining todos keep their order
	rec = doRequest(t, r, http.MethodGet, "/api/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var todos []model.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	require.Len(t, todos, 3)

	ids := make([]int, 0, len(todos))
	for _, todo := range todos {
		ids = append(ids, todo.ID)
	}
	assert.Equal(t, []int{1, 3, 4}, ids)
}

func TestCreateAssignsNextID(t *testing.T) {
	t.Parallel()

	r := NewRouter(store.NewTodoStore(store.Seed()...))

	rec := doRequest(t, r, http.MethodPost, "/api/todos", `{"title":"Learn Rust"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created model.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, model.Todo{ID: 5, Title: "Learn Rust"}, created)
}

func TestUpdateMergesOverExisting(t *testing.T) {
	t.Parallel()

	r := NewRouter(store.NewTodoStore(store.Seed()...))

	rec := doRequest(t, r, http.MethodPut, "/api/todos", `{"id":1,"title":"Learn TS"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, model.Todo{ID: 1, Title: "Learn TS"}, updated)

	// description stays absent from the serialized form
	assert.NotContains(t, rec.Body.String(), "description")
}

func TestUpdateMissingIDLeavesCollectionUnchanged(t *testing.T) {
	t.Parallel()

	r := NewRouter(store.NewTodoStore(store.Seed()...))

	rec := doRequest(t, r, http.MethodPut, "/api/todos", `{"id":42,"title":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Todo entity not found by id: 42", rec.Body.String())

	rec = doRequest(t, r, http.MethodGet, "/api/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var todos []model.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	assert.Len(t, todos, 4)
}

func TestListEmptyStore(t *testing.T) {
	t.Parallel()

	r := NewRouter(store.NewTodoStore())

	rec := doRequest(t, r, http.MethodGet, "/api/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSwaggerJSON(t *testing.T) {
	t.Parallel()

	r := NewRouter(NewMockTodoStore())

	rec := doRequest(t, r, http.MethodGet, "/swagger.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var spec map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))

	assert.Equal(t, "3.0.0", spec["openapi"])

	paths, ok := spec["paths"].(map[string]any)
	require.True(t, ok)
	for _, path := range []string{"/api/todos", "/api/todos/{id}", "/swagger.json", "/docs", "/health"} {
		assert.Contains(t, paths, path)
	}

	// the Todo schema is exposed as a named component
	components := spec["components"].(map[string]any)
	schemas := components["schemas"].(map[string]any)
	require.Contains(t, schemas, "Todo")

	todoSchema := schemas["Todo"].(map[string]any)
	props := todoSchema["properties"].(map[string]any)
	assert.Contains(t, props, "id")
	assert.Contains(t, props, "title")
	assert.Contains(t, props, "description")
	assert.Equal(t, []any{"id", "title"}, todoSchema["required"])
}

func TestDocsPage(t *testing.T) {
	t.Parallel()

	r := NewRouter(NewMockTodoStore())

	rec := doRequest(t, r, http.MethodGet, "/docs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "/swagger.json")
}

func TestHealth(t *testing.T) {
	t.Parallel()

	r := NewRouter(NewMockTodoStore())

	rec := doRequest(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
