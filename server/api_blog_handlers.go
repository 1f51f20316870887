package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devhub/devhub/dto"
	"github.com/devhub/devhub/errors"
)

func (s *Server) HandleCreateBlogPost(c *gin.Context) {
	var req dto.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WithMessage(errors.ErrInvalidArgument, "title and content are required"))
		return
	}
	post, err := s.Blogs.Create(c.Request.Context(), PrincipalFromContext(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// HandleListBlogPosts lists posts, optionally narrowed to one author
// (?authorId=) or to the current principal (?mine=1).
func (s *Server) HandleListBlogPosts(c *gin.Context) {
	ctx := c.Request.Context()
	p := PrincipalFromContext(c)

	if queryFlag(c, "mine") {
		principal, ok := requirePrincipal(c)
		if !ok {
			return
		}
		posts, err := s.Blogs.ListByAuthor(ctx, principal, principal.ID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
		return
	}

	authorID, present, err := queryID(c, "authorId")
	if err != nil {
		writeError(c, err)
		return
	}
	if present {
		posts, err := s.Blogs.ListByAuthor(ctx, p, authorID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
		return
	}

	posts, err := s.Blogs.List(ctx, p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (s *Server) HandleGetBlogPost(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	post, err := s.Blogs.GetByID(c.Request.Context(), PrincipalFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (s *Server) HandleUpdateBlogPost(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var req dto.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WithMessage(errors.ErrInvalidArgument, "title and content are required"))
		return
	}
	post, err := s.Blogs.Update(c.Request.Context(), PrincipalFromContext(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (s *Server) HandleDeleteBlogPost(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := s.Blogs.Delete(c.Request.Context(), PrincipalFromContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
