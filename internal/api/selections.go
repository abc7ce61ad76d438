package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lunch-planner/internal/metrics"
	"lunch-planner/internal/shared"
	"lunch-planner/internal/weekly"
)

type selectionRequest struct {
	LunchID  string `json:"lunchId"`
	Approved bool   `json:"approved"`
}

func (s *Server) listSelections(c *gin.Context) {
	raw, err := s.Selections.ListRaw(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

func (s *Server) createSelection(c *gin.Context) {
	var req selectionRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := s.Selections.Create(c.Request.Context(), c.Param("userId"), req.LunchID, req.Approved, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"userLunchId": created.ID})
}

func (s *Server) updateSelection(c *gin.Context) {
	var req selectionRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := s.Selections.Update(c.Request.Context(), c.Param("userId"), c.Param("userLunchId"), req.LunchID, req.Approved, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userLunchId": updated.ID})
}

func (s *Server) deleteSelection(c *gin.Context) {
	id := c.Param("userLunchId")
	n, err := s.Selections.Delete(c.Request.Context(), c.Param("userId"), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if n == 0 {
		respondError(c, shared.NotFound("user lunch", id))
		return
	}
	c.Status(http.StatusNoContent)
}

// weeklyView builds the user's calendar on the server. Without ?from= the
// range starts this week; without ?to= it spans ?weeks= (default PlanningWeeks).
func (s *Server) weeklyView(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	from, to, err := s.viewRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	rawOptions, err := s.Lunches.ListRaw(ctx, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	rawSelections, err := s.Selections.ListRaw(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	view := weekly.BuildWeeklyView(rawOptions, rawSelections)
	metrics.ObserveView(view.Diagnostics)
	for _, w := range view.Diagnostics.Warnings {
		log.Printf("Warning: weekly view for user %s: %v", userID, w)
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) viewRange(c *gin.Context) (weekly.Date, weekly.Date, error) {
	weeks := s.PlanningWeeks
	if v := c.Query("weeks"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return weekly.Date{}, weekly.Date{}, shared.Invalidf("weeks must be a positive integer")
		}
		weeks = n
	}

	from, err := dateQuery(c, "from")
	if err != nil {
		return weekly.Date{}, weekly.Date{}, err
	}
	to, err := dateQuery(c, "to")
	if err != nil {
		return weekly.Date{}, weekly.Date{}, err
	}

	if from.IsZero() {
		from, _ = weekly.WeeksFrom(s.Now(), weeks)
	}
	if to.IsZero() {
		to = from.WeekStart().AddDays(7*weeks - 1)
	}
	if to.Before(from) {
		return weekly.Date{}, weekly.Date{}, shared.Invalidf("to is before from")
	}
	return from, to, nil
}
