package server

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/devhub/devhub/auth"
	"github.com/devhub/devhub/errors"
	"github.com/devhub/devhub/service"
	"github.com/devhub/devhub/store"
)

// Server wires the authentication core and the resource services behind the
// HTTP surface.
type Server struct {
	Config   *AppConfig
	Codec    *auth.TokenCodec
	Resolver *auth.Resolver
	Auth     *service.AuthService
	Users    *service.UserService
	Blogs    *service.BlogPostService
	Projects *service.ProjectService
	Comments *service.CommentService
}

// NewServer builds a server over the given stores.
func NewServer(cfg *AppConfig, st *store.Stores) *Server {
	hasher := auth.NewBcryptHasher()
	codec := auth.NewTokenCodec(cfg.SigningKey(), cfg.TokenTTL())
	return &Server{
		Config:   cfg,
		Codec:    codec,
		Resolver: &auth.Resolver{Codec: codec, Lookup: &principalLookup{users: st.Users}},
		Auth:     service.NewAuthService(st.Users, hasher, codec),
		Users:    service.NewUserService(st.Users, hasher),
		Blogs:    service.NewBlogPostService(st.BlogPosts),
		Projects: service.NewProjectService(st.Projects),
		Comments: service.NewCommentService(st.Comments, st.BlogPosts, st.Projects),
	}
}

// principalLookup adapts the user store to the resolver's credential lookup.
type principalLookup struct {
	users store.UserStore
}

func (l *principalLookup) LookupPrincipal(ctx context.Context, username string) (*auth.Principal, error) {
	u, err := l.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return service.PrincipalOf(u), nil
}

// writeError translates a core failure to the JSON error envelope.
// Uncategorized errors are logged with full detail and surface only a
// generic message.
func writeError(c *gin.Context, err error) {
	cat := errors.Category(err)
	if cat == errors.ErrServerError {
		log.Printf("server: %s %s: internal error: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(errors.StatusCode(err), gin.H{
		"error":             cat.Error(),
		"error_description": errors.Description(err),
	})
}
