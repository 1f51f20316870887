package server

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devhub/devhub/auth"
	"github.com/devhub/devhub/errors"
)

// principalContextKey is the gin context key the resolved principal lives
// under for the request's lifetime. Set once, never re-resolved.
const principalContextKey = "devhub_principal"

// Paths that bypass identity resolution and always run as Anonymous,
// regardless of whether a token is present.
var (
	excludedPaths        = []string{"/", "/login", "/register", "/index.html"}
	excludedPathPrefixes = []string{"/api/auth/", "/css/", "/js/", "/assets/"}
)

func isExcludedPath(path string) bool {
	for _, p := range excludedPaths {
		if path == p {
			return true
		}
	}
	for _, p := range excludedPathPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// TokenMiddleware resolves the bearer token into a principal and attaches it
// to the request context. Absence of a token leaves the request anonymous;
// a present-but-invalid token rejects the request before any resource
// service runs.
func (s *Server) TokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isExcludedPath(c.Request.URL.Path) {
			c.Next()
			return
		}
		p, err := s.Resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			// Full detail stays server-side; the client sees the category.
			log.Printf("server: token resolution failed for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			writeError(c, err)
			c.Abort()
			return
		}
		if p != nil {
			c.Set(principalContextKey, p)
		}
		c.Next()
	}
}

// PrincipalFromContext returns the resolved principal for the request, or nil
// for an anonymous request.
func PrincipalFromContext(c *gin.Context) *auth.Principal {
	if v, exists := c.Get(principalContextKey); exists {
		if p, ok := v.(*auth.Principal); ok {
			return p
		}
	}
	return nil
}

// requirePrincipal is a convenience for handlers whose service method cannot
// run anonymously at all.
func requirePrincipal(c *gin.Context) (*auth.Principal, bool) {
	p := PrincipalFromContext(c)
	if p == nil {
		writeError(c, errors.ErrAuthenticationRequired)
		return nil, false
	}
	return p, true
}
