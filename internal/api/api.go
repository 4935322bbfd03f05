// package api provides the HTTP API for the application
package api

import (
	"context"
	"net/http"

	"todoapi/internal/model"
	"todoapi/pkg/router"
)

// TodoStore defines the minimal store interface needed by the API
type TodoStore interface {
	// List returns all todos in insertion order
	List(ctx context.Context) ([]model.Todo, error)

	// Get returns a todo by id
	Get(ctx context.Context, id int) (model.Todo, error)

	// Create assigns an id to the draft and stores the resulting todo
	Create(ctx context.Context, draft model.TodoDraft) (model.Todo, error)

	// Update merges the payload over the stored todo with the matching id
	Update(ctx context.Context, upd model.TodoUpdate) (model.Todo, error)

	// Delete removes a todo by id and returns it
	Delete(ctx context.Context, id int) (model.Todo, error)
}

// API holds the components needed to register routes
type API struct {
	router      *router.DocRouter
	todoHandler *TodoHandler
}

// NewRouter creates a new router with all routes configured
func NewRouter(todos TodoStore) *router.DocRouter {
	r := router.NewDocRouter("Todo API",
		"A minimal todo CRUD service with generated OpenAPI documentation",
		"1.0.0",
	)

	r.Use(loggerMiddleware)
	r.Use(recovererMiddleware)

	api := &API{router: r, todoHandler: NewTodoHandler(todos)}
	api.registerRoutes()

	return r
}

// registerRoutes configures all API routes with documentation
func (api *API) registerRoutes() {
	notFoundExample := router.Example{
		ContentType: "text/plain",
		Value:       "Todo entity not found by id: 1",
	}

	api.router = api.router.
		WithTag("Todos", "Operations related to todo items").
		WithTag("Core", "Core API endpoints").
		WithTag("Docs", "API documentation endpoints")

	api.router.Route("GET", "/", homeHandler).
		WithName("Home").
		WithDescription("Home page").
		WithResponse(nil).
		WithTags("Core").
		Register()

	api.router.Route("GET", "/health", healthHandler).
		WithName("Health Check").
		WithDescription("API health check endpoint").
		WithResponse(nil).
		WithTags("Core").
		Register()

	api.router.Route("GET", "/api/todos", api.todoHandler.ListTodos).
		WithName("List Todos").
		WithDescription("Get all todo items in insertion order").
		WithResponse([]model.Todo{}).
		WithTags("Todos").
		Register()

	api.router.Route("POST", "/api/todos", api.todoHandler.CreateTodo).
		WithName("Create Todo").
		WithDescription("Create a new todo item with a server-assigned id").
		WithRequest(&model.TodoDraft{}).
		WithResponse(&model.Todo{}).
		WithErrorResponse("400", "Bad Request", nil,
			router.Example{
				ContentType: "text/plain",
				Value:       "invalid request body",
			}).
		WithTags("Todos").
		Register()

	api.router.Route("GET", "/api/todos/{id}", api.todoHandler.GetTodo).
		WithName("Get Todo").
		WithDescription("Get a todo item by id").
		WithResponse(&model.Todo{}).
		WithErrorResponse("400", "Bad Request", nil).
		WithErrorResponse("404", "Not Found", nil, notFoundExample).
		WithTags("Todos").
		Register()

	api.router.Route("PUT", "/api/todos", api.todoHandler.UpdateTodo).
		WithName("Update Todo").
		WithDescription("Update the todo item whose id is given in the body; absent fields keep their prior values").
		WithRequest(&model.TodoUpdate{}).
		WithResponse(&model.Todo{}).
		WithErrorResponse("400", "Bad Request", nil).
		WithErrorResponse("404", "Not Found", nil, notFoundExample).
		WithTags("Todos").
		Register()

	api.router.Route("DELETE", "/api/todos/{id}", api.todoHandler.DeleteTodo).
		WithName("Delete Todo").
		WithDescription("Delete a todo item by id and return the removed item").
		WithResponse(&model.Todo{}).
		WithErrorResponse("400", "Bad Request", nil).
		WithErrorResponse("404", "Not Found", nil, notFoundExample).
		WithTags("Todos").
		Register()

	api.router.Route("GET", "/swagger.json", specHandler(api.router)).
		WithName("OpenAPI Document").
		WithDescription("The generated OpenAPI 3.0 document for this API").
		WithResponse(nil).
		WithTags("Docs").
		Register()

	api.router.Route("GET", "/docs", docsHandler).
		WithName("API Documentation").
		WithDescription("Interactive documentation UI rendered from the OpenAPI document").
		WithResponse(nil).
		WithTags("Docs").
		Register()
}

// homeHandler handles the home page
func homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("Welcome to the Todo API"))
}

// healthHandler handles the health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
