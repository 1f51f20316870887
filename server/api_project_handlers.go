package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devhub/devhub/dto"
	"github.com/devhub/devhub/errors"
)

func (s *Server) HandleCreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WithMessage(errors.ErrInvalidArgument, "title, description and techStack are required"))
		return
	}
	project, err := s.Projects.Create(c.Request.Context(), PrincipalFromContext(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// HandleListProjects lists projects, optionally narrowed to one creator
// (?creatorId=) or to the current principal (?mine=1).
func (s *Server) HandleListProjects(c *gin.Context) {
	ctx := c.Request.Context()
	p := PrincipalFromContext(c)

	if queryFlag(c, "mine") {
		principal, ok := requirePrincipal(c)
		if !ok {
			return
		}
		projects, err := s.Projects.ListByCreator(ctx, principal, principal.ID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
		return
	}

	creatorID, present, err := queryID(c, "creatorId")
	if err != nil {
		writeError(c, err)
		return
	}
	if present {
		projects, err := s.Projects.ListByCreator(ctx, p, creatorID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
		return
	}

	projects, err := s.Projects.List(ctx, p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (s *Server) HandleGetProject(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	project, err := s.Projects.GetByID(c.Request.Context(), PrincipalFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (s *Server) HandleUpdateProject(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WithMessage(errors.ErrInvalidArgument, "title, description and techStack are required"))
		return
	}
	project, err := s.Projects.Update(c.Request.Context(), PrincipalFromContext(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (s *Server) HandleDeleteProject(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := s.Projects.Delete(c.Request.Context(), PrincipalFromContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
