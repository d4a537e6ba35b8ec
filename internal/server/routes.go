package server

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartstudy-ai/smartstudy-backend/internal/common"
)

const fallbackHome = `<h3>SmartStudy AI</h3><p>Frontend not found. Upload frontend.html to project root.</p>`

// NewRouter assembles the gin engine with middleware and all routes.
func NewRouter(svc *StudyService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(cors.Default())

	r.GET("/", svc.Home)
	r.GET("/healthz", svc.Health)
	r.POST("/process-text", svc.ProcessText)
	r.POST("/upload-file", svc.UploadFile)
	r.POST("/generate-mcq-flashcards", svc.GenerateMCQFlashcards)
	r.GET("/list-models", svc.ListModels)

	return r
}

// requestID attaches a correlation id to the request context and echoes it in
// the response headers.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := uuid.New().String()
		c.Request = c.Request.WithContext(common.WithRequestID(c.Request.Context(), rid))
		c.Header("X-Request-ID", rid)
		c.Next()
	}
}

// Home serves the bundled frontend page when present.
func (s *StudyService) Home(c *gin.Context) {
	if st, err := os.Stat(s.cfg.FrontendPath); err == nil && !st.IsDir() {
		c.File(s.cfg.FrontendPath)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fallbackHome))
}

// Health is the liveness probe.
func (s *StudyService) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
