package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lunch-planner/internal/shared"
	"lunch-planner/internal/user"
)

type userRequest struct {
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r userRequest) toUser(id string) *user.User {
	return &user.User{ID: id, UserName: r.UserName, Email: r.Email, FirstName: r.FirstName, LastName: r.LastName}
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (s *Server) getUser(c *gin.Context) {
	u, err := s.Users.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) createUser(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, &req) {
		return
	}
	u := req.toUser("")
	if err := s.Users.Create(c.Request.Context(), u, actor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (s *Server) updateUser(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.Users.Update(c.Request.Context(), req.toUser(c.Param("userId")), actor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteUser(c *gin.Context) {
	id := c.Param("userId")
	n, err := s.Users.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if n == 0 {
		respondError(c, shared.NotFound("user", id))
		return
	}
	c.Status(http.StatusNoContent)
}
