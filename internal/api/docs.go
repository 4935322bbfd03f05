package api

import (
	"net/http"

	"todoapi/pkg/router"
)

// swaggerUIPage renders the documentation UI against /swagger.json
const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Todo API - Documentation</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      SwaggerUIBundle({
        url: "/swagger.json",
        dom_id: "#swagger-ui",
      });
    };
  </script>
</body>
</html>
`

// specHandler serves the OpenAPI document generated from the router's own
// route registrations. Generation happens per request, after all routes are
// registered.
func specHandler(r *router.DocRouter) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		data, err := r.OpenAPIJSON()
		if err != nil {
			writeText(w, "error generating openapi document", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}

// docsHandler serves the documentation UI page
func docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(swaggerUIPage))
}
