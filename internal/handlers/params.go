package handlers

import (
	"net/http"
	"strconv"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not. It also supports the
// standard net/http PathValue API available in recent Go versions.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

// getIntParam parses a numeric parameter, falling back to def when the
// parameter is absent or malformed.
func getIntParam(r *http.Request, name string, def int) int {
	val, err := strconv.Atoi(getParam(r, name))
	if err != nil {
		return def
	}
	return val
}
