package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lunch-planner/internal/meal"
	"lunch-planner/internal/shared"
)

func (s *Server) listMealTypes(c *gin.Context) {
	types, err := s.MealTypes.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (s *Server) getMealType(c *gin.Context) {
	t, err := s.MealTypes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) createMealType(c *gin.Context) {
	var t meal.MealType
	if !bindJSON(c, &t) {
		return
	}
	if err := s.MealTypes.Create(c.Request.Context(), &t); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (s *Server) updateMealType(c *gin.Context) {
	var t meal.MealType
	if !bindJSON(c, &t) {
		return
	}
	t.ID = c.Param("id")
	if err := s.MealTypes.Update(c.Request.Context(), &t); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteMealType(c *gin.Context) {
	id := c.Param("id")
	n, err := s.MealTypes.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if n == 0 {
		respondError(c, shared.NotFound("meal type", id))
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listMeals(c *gin.Context) {
	meals, err := s.Meals.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (s *Server) getMeal(c *gin.Context) {
	m, err := s.Meals.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (s *Server) createMeal(c *gin.Context) {
	var m meal.Meal
	if !bindJSON(c, &m) {
		return
	}
	m.Type = nil
	if err := s.Meals.Create(c.Request.Context(), &m); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (s *Server) updateMeal(c *gin.Context) {
	var m meal.Meal
	if !bindJSON(c, &m) {
		return
	}
	m.ID = c.Param("id")
	if err := s.Meals.Update(c.Request.Context(), &m); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteMeal(c *gin.Context) {
	id := c.Param("id")
	n, err := s.Meals.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if n == 0 {
		respondError(c, shared.NotFound("meal", id))
		return
	}
	c.Status(http.StatusNoContent)
}
