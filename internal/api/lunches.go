package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lunch-planner/internal/menu"
	"lunch-planner/internal/shared"
	"lunch-planner/internal/weekly"
)

type lunchRequest struct {
	Date   weekly.Date `json:"date"`
	MealID string      `json:"mealId"`
}

// listLunches serves the menu in the nested raw shape, optionally limited
// to ?from=&to= (inclusive, 2006-01-02).
func (s *Server) listLunches(c *gin.Context) {
	from, err := dateQuery(c, "from")
	if err != nil {
		respondError(c, err)
		return
	}
	to, err := dateQuery(c, "to")
	if err != nil {
		respondError(c, err)
		return
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		respondError(c, shared.Invalidf("to is before from"))
		return
	}

	raw, err := s.Lunches.ListRaw(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

func (s *Server) getLunch(c *gin.Context) {
	l, err := s.Lunches.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l.Raw())
}

func (s *Server) createLunch(c *gin.Context) {
	var req lunchRequest
	if !bindJSON(c, &req) {
		return
	}
	l := &menu.Lunch{Date: req.Date, MealID: req.MealID}
	if err := s.Lunches.Create(c.Request.Context(), l); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": l.ID})
}

func (s *Server) updateLunch(c *gin.Context) {
	var req lunchRequest
	if !bindJSON(c, &req) {
		return
	}
	l := &menu.Lunch{ID: c.Param("id"), Date: req.Date, MealID: req.MealID}
	if err := s.Lunches.Update(c.Request.Context(), l); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteLunch(c *gin.Context) {
	id := c.Param("id")
	n, err := s.Lunches.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if n == 0 {
		respondError(c, shared.NotFound("lunch", id))
		return
	}
	c.Status(http.StatusNoContent)
}
