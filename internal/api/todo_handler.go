// package api provides the HTTP API for the application
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"todoapi/internal/model"
	"todoapi/internal/store"
)

// TodoHandler handles HTTP requests for todo operations
type TodoHandler struct {
	todos TodoStore
}

// NewTodoHandler creates a new todo handler backed by the given store
func NewTodoHandler(todos TodoStore) *TodoHandler {
	return &TodoHandler{
		todos: todos,
	}
}

// ListTodos handles GET /api/todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todos.List(r.Context())
	if err != nil {
		writeText(w, "error listing todos", http.StatusInternalServerError)
		return
	}

	writeJSON(w, todos, http.StatusOK)
}

// GetTodo handles GET /api/todos/{id}
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeText(w, "invalid todo id: "+r.PathValue("id"), http.StatusBadRequest)
		return
	}

	todo, err := h.todos.Get(r.Context(), id)
	if err != nil {
		var notFoundErr store.ErrTodoNotFound
		if errors.As(err, &notFoundErr) {
			writeNotFound(w, notFoundErr.ID)
			return
		}
		writeText(w, "error getting todo", http.StatusInternalServerError)
		return
	}

	writeJSON(w, todo, http.StatusOK)
}

// CreateTodo handles POST /api/todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var draft model.TodoDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeText(w, "invalid request body", http.StatusBadRequest)
		return
	}

	todo, err := h.todos.Create(r.Context(), draft)
	if err != nil {
		writeText(w, "error creating todo", http.StatusInternalServerError)
		return
	}

	writeJSON(w, todo, http.StatusOK)
}

// UpdateTodo handles PUT /api/todos. The target id travels in the body.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	var upd model.TodoUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeText(w, "invalid request body", http.StatusBadRequest)
		return
	}

	todo, err := h.todos.Update(r.Context(), upd)
	if err != nil {
		var notFoundErr store.ErrTodoNotFound
		if errors.As(err, &notFoundErr) {
			writeNotFound(w, notFoundErr.ID)
			return
		}
		writeText(w, "error updating todo", http.StatusInternalServerError)
		return
	}

	writeJSON(w, todo, http.StatusOK)
}

// DeleteTodo handles DELETE /api/todos/{id} and returns the removed todo
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeText(w, "invalid todo id: "+r.PathValue("id"), http.StatusBadRequest)
		return
	}

	todo, err := h.todos.Delete(r.Context(), id)
	if err != nil {
		var notFoundErr store.ErrTodoNotFound
		if errors.As(err, &notFoundErr) {
			writeNotFound(w, notFoundErr.ID)
			return
		}
		writeText(w, "error deleting todo", http.StatusInternalServerError)
		return
	}

	writeJSON(w, todo, http.StatusOK)
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
	}
}

// writeText writes a plain-text response with the given status code
func writeText(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write([]byte(message))
}

// writeNotFound writes the not-found response for a todo id
func writeNotFound(w http.ResponseWriter, id int) {
	writeText(w, fmt.Sprintf("Todo entity not found by id: %d", id), http.StatusNotFound)
}
