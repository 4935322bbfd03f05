// package store provides data access interfaces and implementations
package store

import (
	"context"
	"sync"

	"todoapi/internal/model"
)

// TodoStore holds the todo collection in insertion order together with the
// id generator. All operations take the mutex: ids stay unique and no update
// is lost even when the HTTP server handles requests in parallel.
type TodoStore struct {
	mu     sync.Mutex
	todos  []model.Todo
	nextID int
}

// Seed returns the sample todos the server starts with
func Seed() []model.Todo {
	return []model.Todo{
		{ID: 1, Title: "Learn TypeScript"},
		{ID: 2, Title: "Learn Angular"},
		{ID: 3, Title: "Learn NestJS"},
		{ID: 4, Title: "Learn GraphQL"},
	}
}

// NewTodoStore creates a store preloaded with the given todos. The id
// generator starts one past the highest preloaded id so ids are never reused.
func NewTodoStore(initial ...model.Todo) *TodoStore {
	s := &TodoStore{
		todos:  make([]model.Todo, 0, len(initial)),
		nextID: 1,
	}

	for _, todo := range initial {
		s.todos = append(s.todos, todo)
		if todo.ID >= s.nextID {
			s.nextID = todo.ID + 1
		}
	}

	return s
}

// List returns all todos in insertion order
func (s *TodoStore) List(ctx context.Context) ([]model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos := make([]model.Todo, len(s.todos))
	copy(todos, s.todos)

	return todos, nil
}

// Get returns the todo with the given id
func (s *TodoStore) Get(ctx context.Context, id int) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, todo := range s.todos {
		if todo.ID == id {
			return todo, nil
		}
	}

	return model.Todo{}, ErrTodoNotFound{ID: id}
}

// Create assigns the next id to the draft and appends the resulting todo to
// the end of the collection
func (s *TodoStore) Create(ctx context.Context, draft model.TodoDraft) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo := model.Todo{
		ID:          s.nextID,
		Title:       draft.Title,
		Description: draft.Description,
	}
	s.nextID++

	s.todos = append(s.todos, todo)
	return todo, nil
}

// Update merges the payload over the stored todo with the matching id.
// Fields present in the payload overwrite, absent fields keep their prior
// value. The todo keeps its position in the collection.
func (s *TodoStore) Update(ctx context.Context, upd model.TodoUpdate) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID != upd.ID {
			continue
		}

		if upd.Title != nil {
			s.todos[i].Title = *upd.Title
		}
		if upd.Description != nil {
			s.todos[i].Description = *upd.Description
		}

		return s.todos[i], nil
	}

	return model.Todo{}, ErrTodoNotFound{ID: upd.ID}
}

// Delete removes the todo with the given id and returns it
func (s *TodoStore) Delete(ctx context.Context, id int) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, todo := range s.todos {
		if todo.ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return todo, nil
		}
	}

	return model.Todo{}, ErrTodoNotFound{ID: id}
}
