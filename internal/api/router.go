// Package api serves the lunch planner's REST API over gin.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lunch-planner/internal/auth"
	"lunch-planner/internal/meal"
	"lunch-planner/internal/menu"
	"lunch-planner/internal/metrics"
	"lunch-planner/internal/selection"
	"lunch-planner/internal/user"
)

// Server holds the collaborators the handlers need.
type Server struct {
	Users      *user.Repository
	MealTypes  *meal.TypeRepository
	Meals      *meal.Repository
	Lunches    *menu.Repository
	Selections *selection.Repository
	Issuer     *auth.Issuer
	// DataPath is reported on /health.
	DataPath string
	// PlanningWeeks is the default span of the weekly view.
	PlanningWeeks int
	// Now is the clock used for default date ranges.
	Now func() time.Time
}

// NewRouter wires every route. allowedOrigins enables CORS for those origins
// when not empty.
func NewRouter(s *Server, allowedOrigins []string) *gin.Engine {
	if s.Now == nil {
		s.Now = time.Now
	}
	if s.PlanningWeeks < 1 {
		s.PlanningWeeks = 2
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), observe())
	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := auth.RequireRole(auth.RoleAdmin)
	self := auth.RequireSelfOrAdmin("userId")

	api := r.Group("/api", auth.RequireAuth(s.Issuer))

	api.GET("/users", admin, s.listUsers)
	api.POST("/users", admin, s.createUser)
	api.GET("/users/:userId", self, s.getUser)
	api.PUT("/users/:userId", admin, s.updateUser)
	api.DELETE("/users/:userId", admin, s.deleteUser)

	api.GET("/users/:userId/lunches", self, s.listSelections)
	api.POST("/users/:userId/lunches", self, s.createSelection)
	api.PUT("/users/:userId/lunches/:userLunchId", self, s.updateSelection)
	api.DELETE("/users/:userId/lunches/:userLunchId", self, s.deleteSelection)
	api.GET("/users/:userId/weekly", self, s.weeklyView)

	api.GET("/mealtypes", s.listMealTypes)
	api.GET("/mealtypes/:id", s.getMealType)
	api.POST("/mealtypes", admin, s.createMealType)
	api.PUT("/mealtypes/:id", admin, s.updateMealType)
	api.DELETE("/mealtypes/:id", admin, s.deleteMealType)

	api.GET("/meals", s.listMeals)
	api.GET("/meals/:id", s.getMeal)
	api.POST("/meals", admin, s.createMeal)
	api.PUT("/meals/:id", admin, s.updateMeal)
	api.DELETE("/meals/:id", admin, s.deleteMeal)

	api.GET("/lunches", s.listLunches)
	api.GET("/lunches/:id", s.getLunch)
	api.POST("/lunches", admin, s.createLunch)
	api.PUT("/lunches/:id", admin, s.updateLunch)
	api.DELETE("/lunches/:id", admin, s.deleteLunch)

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"system": metrics.GetSysHealth(s.DataPath),
	})
}

// observe feeds request counts and latencies to Prometheus, labelled by route
// pattern so ids do not explode the label space.
func observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
