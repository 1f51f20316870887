package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devhub/devhub/dto"
	"github.com/devhub/devhub/errors"
)

func (s *Server) HandleListUsers(c *gin.Context) {
	users, err := s.Users.List(c.Request.Context(), PrincipalFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

func (s *Server) HandleSearchUsers(c *gin.Context) {
	users, err := s.Users.Search(c.Request.Context(), PrincipalFromContext(c), c.Query("username"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

func (s *Server) HandleGetUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	user, err := s.Users.GetByID(c.Request.Context(), PrincipalFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (s *Server) HandleUpdateUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WithMessage(errors.ErrInvalidArgument, "invalid user payload"))
		return
	}
	user, err := s.Users.Update(c.Request.Context(), PrincipalFromContext(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (s *Server) HandleDeleteUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := s.Users.Delete(c.Request.Context(), PrincipalFromContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
