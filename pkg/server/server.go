package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/duynguyendang/plantcurator/pkg/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ImagesRoute is the URL prefix image files are served under.
const ImagesRoute = "/images"

// Server holds the state for the web UI and REST API.
type Server struct {
	recommender *service.Recommender
	router      *gin.Engine
}

// NewServer creates a new Server instance.
func NewServer(rec *service.Recommender) *Server {
	r := gin.Default()
	r.Use(requestID())
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	s := &Server{
		recommender: rec,
		router:      r,
	}
	s.setupRoutes()
	return s
}

// Run starts the server on the specified address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)
	s.router.GET("/", s.handleIndex)
	s.router.Static(ImagesRoute, s.recommender.ImagesDir())

	v1 := s.router.Group("/v1")
	v1.GET("/questions", s.handleQuestions)
	v1.POST("/recommend", s.handleRecommend)
	v1.GET("/plants", s.handlePlants)
	v1.GET("/plants/:name", s.handlePlant)
	v1.POST("/catalog/reload", s.handleReload)
}

// Health check
func (s *Server) healthCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// requestID tags every request with an id, reusing the caller's X-Request-ID when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
