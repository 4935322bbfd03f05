// package router provides an http.ServeMux wrapper that captures
// documentation data for every registered route and can render it as an
// OpenAPI 3.0 document.
package router

import (
	"net/http"
)

// Server describes a server entry in the generated document
type Server struct {
	URL         string
	Description string
}

// Tag groups related endpoints in the generated document
type Tag struct {
	Name        string
	Description string
}

// RouteResponse represents a documented response for a specific HTTP status code
type RouteResponse struct {
	StatusCode  string    // HTTP status code (e.g., "200", "400")
	Description string    // Description of the response
	Schema      any       // Response schema/type (optional)
	Examples    []Example // Example responses (optional)
}

// Example represents an example response for documentation
type Example struct {
	ContentType string // Content type of the example (e.g., "application/json")
	Value       string // Example value as string
}

// RouteInfo stores documentation for a route
type RouteInfo struct {
	Method       string                   // HTTP method (GET, POST, etc.)
	Path         string                   // URL path
	Name         string                   // Friendly name for the endpoint
	Description  string                   // Description of what the endpoint does
	Handler      http.Handler             // The actual handler function
	RequestType  any                      // Example request type (for schema generation)
	ResponseType any                      // Example success response type (for schema generation)
	Responses    map[string]RouteResponse // Map of HTTP status codes to responses
	Tags         []string                 // Tags for grouping endpoints
	Secured      bool                     // Whether the route requires bearer auth
}

// RouteConfig is a builder for route configuration
type RouteConfig struct {
	router       *DocRouter
	method       string
	path         string
	handler      http.HandlerFunc
	name         string
	description  string
	requestType  any
	responseType any
	responses    map[string]RouteResponse
	tags         []string
	secured      bool
}

// DocRouter wraps http.ServeMux to add documentation capabilities
type DocRouter struct {
	mux         *http.ServeMux
	title       string
	description string
	version     string

	routes  []RouteInfo
	servers []Server
	tags    []Tag

	useBearerAuth   bool
	middlewares     []func(http.Handler) http.Handler
	schemaRegistry  *schemaRegistry
	customResponses map[string]map[string]any
	routeResponses  map[string]map[string]string // routeID -> statusCode -> responseName
}

// NewDocRouter creates a new documented router
func NewDocRouter(title, description, version string) *DocRouter {
	return &DocRouter{
		mux:             http.NewServeMux(),
		title:           title,
		description:     description,
		version:         version,
		routes:          []RouteInfo{},
		schemaRegistry:  newSchemaRegistry(),
		customResponses: make(map[string]map[string]any),
		routeResponses:  make(map[string]map[string]string),
	}
}

// WithServer adds a server entry to the generated document
func (dr *DocRouter) WithServer(url, description string) *DocRouter {
	dr.servers = append(dr.servers, Server{URL: url, Description: description})
	return dr
}

// WithTag adds a tag definition to the generated document
func (dr *DocRouter) WithTag(name, description string) *DocRouter {
	dr.tags = append(dr.tags, Tag{Name: name, Description: description})
	return dr
}

// WithBearerAuth declares a bearer token security scheme for the API
func (dr *DocRouter) WithBearerAuth() *DocRouter {
	dr.useBearerAuth = true
	return dr
}

// RegisterResponse adds a reusable response component that routes can
// reference by name through RegisterRouteResponse
func (dr *DocRouter) RegisterResponse(name string, response map[string]any) {
	dr.customResponses[name] = response
}

// RegisterRouteResponse associates a named response with a specific route and
// status code
func (dr *DocRouter) RegisterRouteResponse(routePath, method, statusCode, responseName string) {
	routeID := routeID(method, routePath)

	if _, exists := dr.routeResponses[routeID]; !exists {
		dr.routeResponses[routeID] = make(map[string]string)
	}

	dr.routeResponses[routeID][statusCode] = responseName
}

// Route starts a route configuration chain
func (dr *DocRouter) Route(method, path string, handler http.HandlerFunc) *RouteConfig {
	return &RouteConfig{
		router:    dr,
		method:    method,
		path:      path,
		handler:   handler,
		responses: make(map[string]RouteResponse),
	}
}

// WithName adds a name to the route
func (rc *RouteConfig) WithName(name string) *RouteConfig {
	rc.name = name
	return rc
}

// WithDescription adds a description to the route
func (rc *RouteConfig) WithDescription(description string) *RouteConfig {
	rc.description = description
	return rc
}

// WithRequest adds a request type to the route
func (rc *RouteConfig) WithRequest(requestType any) *RouteConfig {
	rc.requestType = requestType
	return rc
}

// WithResponse adds a success response type to the route
func (rc *RouteConfig) WithResponse(responseType any) *RouteConfig {
	rc.responseType = responseType
	return rc
}

// WithErrorResponse adds an error response to the route
func (rc *RouteConfig) WithErrorResponse(statusCode, description string, schema any, examples ...Example) *RouteConfig {
	rc.responses[statusCode] = RouteResponse{
		StatusCode:  statusCode,
		Description: description,
		Schema:      schema,
		Examples:    examples,
	}
	return rc
}

// WithTags adds tags to the route
func (rc *RouteConfig) WithTags(tags ...string) *RouteConfig {
	rc.tags = tags
	return rc
}

// WithSecurity marks the route as requiring the API security scheme
func (rc *RouteConfig) WithSecurity() *RouteConfig {
	rc.secured = true
	return rc
}

// Register finalizes the route configuration and registers it with the router
func (rc *RouteConfig) Register() {
	// Go 1.22 pattern with method
	pattern := rc.method + " " + rc.path

	rc.router.mux.Handle(pattern, rc.handler)

	rc.router.routes = append(rc.router.routes, RouteInfo{
		Method:       rc.method,
		Path:         rc.path,
		Name:         rc.name,
		Description:  rc.description,
		Handler:      rc.handler,
		RequestType:  rc.requestType,
		ResponseType: rc.responseType,
		Responses:    rc.responses,
		Tags:         rc.tags,
		Secured:      rc.secured,
	})
}

// GetRoutes returns all documented routes
func (dr *DocRouter) GetRoutes() []RouteInfo {
	return dr.routes
}

// ServeHTTP makes DocRouter implement the http.Handler interface. Requests
// pass through the middleware chain in registration order before reaching
// the mux, regardless of whether Use was called before or after Route.
func (dr *DocRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var handler http.Handler = dr.mux
	for i := len(dr.middlewares) - 1; i >= 0; i-- {
		handler = dr.middlewares[i](handler)
	}
	handler.ServeHTTP(w, r)
}

// Use allows adding middleware to the router
func (dr *DocRouter) Use(middleware ...func(http.Handler) http.Handler) {
	dr.middlewares = append(dr.middlewares, middleware...)
}
