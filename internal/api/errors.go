package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lunch-planner/internal/auth"
	"lunch-planner/internal/shared"
	"lunch-planner/internal/weekly"
)

// respondError maps repository errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, shared.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, shared.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindJSON decodes the request body into v, answering 400 on failure.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return false
	}
	return true
}

// dateQuery reads an optional 2006-01-02 query parameter.
func dateQuery(c *gin.Context, name string) (weekly.Date, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return weekly.Date{}, nil
	}
	d, err := weekly.ParseDate(v)
	if err != nil {
		return weekly.Date{}, shared.Invalidf("%s: %v", name, err)
	}
	return d, nil
}

// actor returns the id of the authenticated caller for audit fields.
func actor(c *gin.Context) string {
	if claims, ok := auth.ClaimsFrom(c); ok {
		return claims.UserID()
	}
	return ""
}
