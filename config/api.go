package config

// GetAuthSkipperPaths returns paths that skip bearer-token auth:
// login itself, the public GraphQL endpoint and the read-only HTML
// dashboard.
func GetAuthSkipperPaths() []string {
	return []string{"/api/auth/login", "/graphql", "/playground", "/dashboard", "/health"}
}
