package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devhub/devhub/errors"
)

// NewGinEngine builds the Gin router and registers all routes. The auth
// endpoints and static pages are public; everything else runs behind the
// token middleware.
func NewGinEngine(s *Server) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger(), gin.Recovery())

	RegisterPageRoutes(r)

	r.POST("/api/auth/register", s.HandleAPIRegister)
	r.POST("/api/auth/login", s.HandleAPILogin)
	r.POST("/api/auth/adminlogin", s.HandleAPIAdminLogin)

	api := r.Group("/api")
	api.Use(s.TokenMiddleware())

	users := api.Group("/users")
	users.GET("", s.HandleListUsers)
	users.GET("/search", s.HandleSearchUsers)
	users.GET("/:id", s.HandleGetUser)
	users.PUT("/:id", s.HandleUpdateUser)
	users.DELETE("/:id", s.HandleDeleteUser)

	blogs := api.Group("/blogposts")
	blogs.POST("", s.HandleCreateBlogPost)
	blogs.GET("", s.HandleListBlogPosts)
	blogs.GET("/:id", s.HandleGetBlogPost)
	blogs.PUT("/:id", s.HandleUpdateBlogPost)
	blogs.DELETE("/:id", s.HandleDeleteBlogPost)

	projects := api.Group("/projects")
	projects.POST("", s.HandleCreateProject)
	projects.GET("", s.HandleListProjects)
	projects.GET("/:id", s.HandleGetProject)
	projects.PUT("/:id", s.HandleUpdateProject)
	projects.DELETE("/:id", s.HandleDeleteProject)

	comments := api.Group("/comments")
	comments.POST("", s.HandleCreateComment)
	comments.GET("", s.HandleListComments)
	comments.GET("/:id", s.HandleGetComment)
	comments.PUT("/:id", s.HandleUpdateComment)
	comments.DELETE("/:id", s.HandleDeleteComment)

	return r
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.WithMessagef(errors.ErrInvalidArgument, "invalid id: %s", c.Param("id"))
	}
	return id, nil
}

// queryID parses an optional numeric query parameter. ok is false when the
// parameter is absent.
func queryID(c *gin.Context, name string) (uint64, bool, error) {
	raw, present := c.GetQuery(name)
	if !present {
		return 0, false, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, errors.WithMessagef(errors.ErrInvalidArgument, "invalid %s: %s", name, raw)
	}
	return id, true, nil
}

func queryFlag(c *gin.Context, name string) bool {
	v := c.Query(name)
	return v == "1" || v == "true"
}
