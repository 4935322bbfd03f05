package router

import (
	"encoding/json"
	"fmt"
	"strings"
)

// routeID builds the key used to associate registered responses with routes
func routeID(method, path string) string {
	return fmt.Sprintf("%s:%s", strings.ToLower(method), path)
}

// OpenAPI generates an OpenAPI 3.0 specification from the registered routes
func (dr *DocRouter) OpenAPI() map[string]any {
	spec := map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       dr.title,
			"description": dr.description,
			"version":     dr.version,
		},
		"paths":      dr.generatePaths(),
		"components": dr.generateComponents(),
	}

	if len(dr.servers) > 0 {
		servers := make([]any, 0, len(dr.servers))
		for _, s := range dr.servers {
			servers = append(servers, map[string]any{
				"url":         s.URL,
				"description": s.Description,
			})
		}
		spec["servers"] = servers
	}

	if len(dr.tags) > 0 {
		tags := make([]any, 0, len(dr.tags))
		for _, t := range dr.tags {
			tags = append(tags, map[string]any{
				"name":        t.Name,
				"description": t.Description,
			})
		}
		spec["tags"] = tags
	}

	return spec
}

// OpenAPIJSON generates the specification and marshals it with indentation
func (dr *DocRouter) OpenAPIJSON() ([]byte, error) {
	data, err := json.MarshalIndent(dr.OpenAPI(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}

	return data, nil
}

// extractPathParams gets path parameters from a URL path
func extractPathParams(path string) []string {
	var params []string

	for _, part := range strings.Split(path, "/") {
		if len(part) > 1 && part[0] == '{' && part[len(part)-1] == '}' {
			params = append(params, part[1:len(part)-1])
		}
	}

	return params
}

// generatePathParameters creates parameter objects for path parameters
func generatePathParameters(params []string) []any {
	var parameters []any

	for _, param := range params {
		parameters = append(parameters, map[string]any{
			"name":     param,
			"in":       "path",
			"required": true,
			"schema": map[string]any{
				"type": "string",
			},
			"description": fmt.Sprintf("%s parameter", param),
		})
	}

	return parameters
}

// generatePaths creates the paths section of the OpenAPI spec
func (dr *DocRouter) generatePaths() map[string]any {
	paths := map[string]any{}

	for _, route := range dr.routes {
		// skip paths with regex patterns, they do not map to OpenAPI
		if strings.Contains(route.Path, "^") || strings.Contains(route.Path, "(") {
			continue
		}

		path := route.Path

		if _, exists := paths[path]; !exists {
			paths[path] = map[string]any{}
		}

		pathItem := paths[path].(map[string]any)
		method := strings.ToLower(route.Method)

		operation := map[string]any{
			"summary":     route.Name,
			"description": route.Description,
			"operationId": fmt.Sprintf("%s_%s", method, strings.ReplaceAll(route.Path, "/", "_")),
			"responses":   dr.generateResponses(route),
		}

		if pathParams := extractPathParams(path); len(pathParams) > 0 {
			operation["parameters"] = generatePathParameters(pathParams)
		}

		if len(route.Tags) > 0 {
			tags := make([]any, 0, len(route.Tags))
			for _, tag := range route.Tags {
				tags = append(tags, tag)
			}
			operation["tags"] = tags
		}

		if route.Secured && dr.useBearerAuth {
			operation["security"] = []any{
				map[string]any{"bearerAuth": []any{}},
			}
		}

		// request body only makes sense for methods that carry one
		if route.RequestType != nil && (method == "post" || method == "put" || method == "patch") {
			operation["requestBody"] = dr.generateRequestBody(route)
		}

		pathItem[method] = operation
	}

	return paths
}

// generateResponses creates response documentation for a route
func (dr *DocRouter) generateResponses(route RouteInfo) map[string]any {
	responses := map[string]any{}

	for statusCode, routeResponse := range route.Responses {
		responseContent := map[string]any{}

		if routeResponse.Schema != nil {
			responseContent["schema"] = dr.schemaRef(routeResponse.Schema)
		}

		if len(routeResponse.Examples) > 0 {
			examples := map[string]any{}
			for _, example := range routeResponse.Examples {
				examples[example.ContentType] = map[string]any{
					"value": example.Value,
				}
			}
			responseContent["examples"] = examples
		}

		response := map[string]any{
			"description": routeResponse.Description,
		}

		if len(responseContent) > 0 {
			response["content"] = map[string]any{
				"application/json": responseContent,
			}
		}

		responses[statusCode] = response
	}

	// success response, unless the route overrode it
	if _, exists := responses["200"]; !exists {
		if route.ResponseType != nil {
			responses["200"] = map[string]any{
				"description": "Successful response",
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": dr.schemaRef(route.ResponseType),
					},
				},
			}
		} else {
			responses["200"] = map[string]any{
				"description": "Successful response",
			}
		}
	}

	// responses registered through RegisterRouteResponse
	if routeResps, exists := dr.routeResponses[routeID(route.Method, route.Path)]; exists {
		for statusCode, responseName := range routeResps {
			if _, exists := responses[statusCode]; exists {
				continue
			}

			responses[statusCode] = map[string]any{
				"$ref": fmt.Sprintf("#/components/responses/%s", responseName),
			}
		}
	}

	return responses
}

// generateRequestBody creates request body documentation
func (dr *DocRouter) generateRequestBody(route RouteInfo) map[string]any {
	return map[string]any{
		"description": fmt.Sprintf("request body for %s", route.Name),
		"required":    true,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": dr.schemaRef(route.RequestType),
			},
		},
	}
}

// generateComponents creates the reusable components section
func (dr *DocRouter) generateComponents() map[string]any {
	components := map[string]any{
		"schemas": dr.schemaRegistry.getSchemas(),
	}

	if len(dr.customResponses) > 0 {
		responses := make(map[string]any, len(dr.customResponses))
		for name, response := range dr.customResponses {
			responses[name] = response
		}
		components["responses"] = responses
	}

	if dr.useBearerAuth {
		components["securitySchemes"] = map[string]any{
			"bearerAuth": map[string]any{
				"type":         "http",
				"scheme":       "bearer",
				"bearerFormat": "JWT",
			},
		}
	}

	return components
}
