package server

import (
	"log/slog"
	"net/http"

	"github.com/duynguyendang/plantcurator/pkg/common/errors"
	"github.com/duynguyendang/plantcurator/pkg/matcher"
	"github.com/duynguyendang/plantcurator/pkg/render"
	"github.com/duynguyendang/plantcurator/pkg/service"
	"github.com/duynguyendang/plantcurator/pkg/vocab"
	"github.com/gin-gonic/gin"
)

// QuestionResponse is a question with its options, as served by the API.
type QuestionResponse struct {
	Key     string         `json:"key"`
	Title   string         `json:"title"`
	Group   string         `json:"group"`
	Options []vocab.Option `json:"options"`
}

// handleIndex renders the form and, when every question is answered, the results.
// The whole pipeline runs again on each request.
func (s *Server) handleIndex(c *gin.Context) {
	answers := matcher.Answers{}
	for _, q := range s.recommender.Questions() {
		answers[q.Key] = c.Query(q.Key)
	}
	req := service.Request{Answers: answers, Mode: c.Query("mode")}

	status := http.StatusOK
	view, err := s.recommender.Recommend(c.Request.Context(), req)
	if err != nil {
		appErr := errors.MapError(err)
		status = appErr.Code
		view = &render.ResultView{Mode: s.recommender.DefaultMode()}
		view.Add(render.LevelError, err.Error())
	}

	c.HTML(status, "index.tmpl", newPage(s.recommender, req, view))
}

// handleQuestions returns the six questions and their options.
func (s *Server) handleQuestions(c *gin.Context) {
	qs := s.recommender.Questions()
	out := make([]QuestionResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, QuestionResponse{Key: q.Key, Title: q.Title, Group: q.Group, Options: q.Options()})
	}
	c.JSON(http.StatusOK, gin.H{
		"questions":    out,
		"unselected":   vocab.Unselected,
		"default_mode": s.recommender.DefaultMode(),
	})
}

// handleRecommend ranks the catalog for a JSON request body.
func (s *Server) handleRecommend(c *gin.Context) {
	var req service.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, errors.NewAppError(http.StatusBadRequest, "Invalid request body", err))
		return
	}

	view, err := s.recommender.Recommend(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// handlePlants lists the catalog in file order.
func (s *Server) handlePlants(c *gin.Context) {
	cat, err := s.recommender.Catalog()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"path":    cat.Path(),
		"count":   cat.Len(),
		"skipped": cat.Skipped(),
		"plants":  cat.Records(),
	})
}

// handlePlant returns one catalog record by its Korean name.
func (s *Server) handlePlant(c *gin.Context) {
	rec, err := s.recommender.Plant(c.Param("name"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// handleReload drops the cached catalog and reads the file again.
func (s *Server) handleReload(c *gin.Context) {
	cat, err := s.recommender.Reload()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": cat.Path(), "count": cat.Len(), "skipped": cat.Skipped()})
}

func handleError(c *gin.Context, err error) {
	appErr := errors.MapError(err)
	if appErr.Code >= http.StatusInternalServerError {
		slog.Error("request failed", "path", c.Request.URL.Path, "request_id", c.GetString("request_id"), "error", err)
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Message, "detail": err.Error()})
}
