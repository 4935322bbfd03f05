package api

import (
	"context"

	"todoapi/internal/model"
)

// MockTodoStore is a no-op implementation of TodoStore used solely for
// offline OpenAPI documentation generation
type MockTodoStore struct{}

// NewMockTodoStore creates a new mock todo store
func NewMockTodoStore() *MockTodoStore {
	return &MockTodoStore{}
}

// List implements TodoStore
func (s *MockTodoStore) List(ctx context.Context) ([]model.Todo, error) {
	return nil, nil
}

// Get implements TodoStore
func (s *MockTodoStore) Get(ctx context.Context, id int) (model.Todo, error) {
	return model.Todo{}, nil
}

// Create implements TodoStore
func (s *MockTodoStore) Create(ctx context.Context, draft model.TodoDraft) (model.Todo, error) {
	return model.Todo{}, nil
}

// Update implements TodoStore
func (s *MockTodoStore) Update(ctx context.Context, upd model.TodoUpdate) (model.Todo, error) {
	return model.Todo{}, nil
}

// Delete implements TodoStore
func (s *MockTodoStore) Delete(ctx context.Context, id int) (model.Todo, error) {
	return model.Todo{}, nil
}
