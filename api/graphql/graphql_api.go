package graphql

import (
	"net/http"
	"strings"

	"github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	graphqlpkg "inventorypro.GO/graphql"
	"inventorypro.GO/graphqlserver"
	itemRepo "inventorypro.GO/model/repository/item"
	authService "inventorypro.GO/service/auth"
)

// RegisterGraphQLRoutes wires /graphql and /playground. Reads are public;
// mutations check the session user the middleware puts into context.
func RegisterGraphQLRoutes(e *echo.Echo, store itemRepo.Store, auth *authService.Service) {
	schema, err := graphqlserver.NewSchema(store)
	if err != nil {
		panic("graphql schema: " + err.Error())
	}
	RegisterGraphQLRoutesWithSchema(e, schema, auth)
}

// RegisterGraphQLRoutesWithSchema registers /graphql with a custom schema (for tests with mocks).
func RegisterGraphQLRoutesWithSchema(e *echo.Echo, schema *graphql.Schema, auth *authService.Service) {
	handler := sessionContextMiddleware(graphqlserver.Handler(schema), auth)
	e.POST("/graphql", echo.WrapHandler(handler))
	e.GET("/graphql", echo.WrapHandler(handler))
	e.GET("/playground", echo.WrapHandler(playgroundHandler()))
}

// sessionContextMiddleware resolves an optional Bearer token into the
// request context so mutation resolvers can enforce capabilities.
func sessionContextMiddleware(next http.Handler, auth *authService.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth != nil {
			if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token := strings.TrimPrefix(h, "Bearer ")
				if user, err := auth.Validate(r.Context(), token); err == nil {
					r = r.WithContext(graphqlpkg.WithUser(r.Context(), user))
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

func playgroundHandler() http.Handler {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>GraphQL Playground</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/css/index.css"/>
</head>
<body>
	<div id="root"/>
	<script src="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/js/middleware.js"></script>
	<script>window.addEventListener('load', function() {
		GraphQLPlayground.init({ endpoint: '/graphql' });
	})</script>
</body>
</html>`
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	})
}
