package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devhub/devhub/dto"
	"github.com/devhub/devhub/errors"
)

// HandleAPIRegister registers a new user and returns a bearer token.
func (s *Server) HandleAPIRegister(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WithMessage(errors.ErrInvalidArgument, "invalid registration payload"))
		return
	}
	_, token, err := s.Auth.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.TokenResponse{Token: token})
}

// HandleAPILogin authenticates a user and returns a bearer token.
func (s *Server) HandleAPILogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WithMessage(errors.ErrInvalidArgument, "username and password are required"))
		return
	}
	_, token, err := s.Auth.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// HandleAPIAdminLogin authenticates an admin user. A valid credential
// without the admin role is rejected with 403.
func (s *Server) HandleAPIAdminLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WithMessage(errors.ErrInvalidArgument, "username and password are required"))
		return
	}
	_, token, err := s.Auth.AdminLogin(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
