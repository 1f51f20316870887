package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devhub/devhub/dto"
	"github.com/devhub/devhub/errors"
)

func (s *Server) HandleCreateComment(c *gin.Context) {
	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WithMessage(errors.ErrInvalidArgument, "content, parentType and parentId are required"))
		return
	}
	comment, err := s.Comments.Create(c.Request.Context(), PrincipalFromContext(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// HandleListComments lists comments, optionally narrowed to one parent
// (?blogPostId= or ?projectId=) or to the current principal (?mine=1).
func (s *Server) HandleListComments(c *gin.Context) {
	ctx := c.Request.Context()
	p := PrincipalFromContext(c)

	if queryFlag(c, "mine") {
		principal, ok := requirePrincipal(c)
		if !ok {
			return
		}
		comments, err := s.Comments.ListByUser(ctx, principal, principal.ID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
		return
	}

	if blogPostID, present, err := queryID(c, "blogPostId"); err != nil {
		writeError(c, err)
		return
	} else if present {
		comments, err := s.Comments.ListByBlogPost(ctx, p, blogPostID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
		return
	}

	if projectID, present, err := queryID(c, "projectId"); err != nil {
		writeError(c, err)
		return
	} else if present {
		comments, err := s.Comments.ListByProject(ctx, p, projectID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
		return
	}

	comments, err := s.Comments.List(ctx, p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (s *Server) HandleGetComment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	comment, err := s.Comments.GetByID(c.Request.Context(), PrincipalFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (s *Server) HandleUpdateComment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WithMessage(errors.ErrInvalidArgument, "content is required"))
		return
	}
	comment, err := s.Comments.Update(c.Request.Context(), PrincipalFromContext(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (s *Server) HandleDeleteComment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := s.Comments.Delete(c.Request.Context(), PrincipalFromContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
