package server

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartstudy-ai/smartstudy-backend/constants"
	"github.com/smartstudy-ai/smartstudy-backend/internal/common"
	"github.com/smartstudy-ai/smartstudy-backend/internal/extract"
	"github.com/smartstudy-ai/smartstudy-backend/internal/llm"
)

// UploadFile sends an uploaded document to the model for summarization,
// archives the original to object storage, and persists the extraction.
func (s *StudyService) UploadFile(c *gin.Context) {
	userID := c.PostForm("user_id")
	title := c.PostForm("title")

	v := common.NewValidator().
		Field("user_id", userID, common.Required).
		Field("title", title, common.Required, common.MaxLen(200))
	if v.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"error": v.ErrorMessage()})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	ext := filepath.Ext(header.Filename)
	if !constants.IsAllowedExt(ext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type: " + constants.NormalizeExt(ext)})
		return
	}

	ctx := common.WithUserID(c.Request.Context(), userID)
	rid := common.RequestIDFromContext(ctx)

	data, err := readUpload(header)
	if err != nil {
		s.logger.Error("study.upload.read_failed", "req_id", rid, "filename", header.Filename, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = constants.MIMEForExt(ext)
	}

	// Archival is best effort; the study flow continues without the copy.
	fileURL := s.archiveUpload(c, header, userID)

	resp, err := s.gen.GenerateWithFile(ctx, llm.FileAttachment{Data: data, MIMEType: mimeType}, llm.BuildFilePrompt(), llm.FileMaxOutputTokens)
	if err != nil {
		s.logger.Error("study.upload.model_failed", "req_id", rid, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "model call failed"})
		return
	}

	result := extract.ParseModelResponse(resp)
	doc := result.Document()

	docID, err := s.persist(ctx, userID, title, doc)
	if err != nil {
		s.logger.Error("study.upload.save_failed", "req_id", rid, "user_id", userID, "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": "could not save note"})
		return
	}

	out := gin.H{
		"status": "ok",
		"doc_id": docID,
		"result": doc,
	}
	if fileURL != "" {
		out["file_url"] = fileURL
	}
	c.JSON(http.StatusOK, out)
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// archiveUpload stages the upload in a temp file and copies it to the bucket
// under uploads/{user}/. Returns the public URL, or empty on failure.
func (s *StudyService) archiveUpload(c *gin.Context, header *multipart.FileHeader, userID string) string {
	if s.files == nil {
		return ""
	}
	ctx := c.Request.Context()
	rid := common.RequestIDFromContext(ctx)

	tmp := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(header.Filename))
	if err := c.SaveUploadedFile(header, tmp); err != nil {
		s.logger.Warn("study.upload.stage_failed", "req_id", rid, "error", err)
		return ""
	}
	defer os.Remove(tmp)

	dest := filepath.ToSlash(filepath.Join("uploads", userID, uuid.New().String()+"_"+filepath.Base(header.Filename)))
	url, err := s.files.UploadFile(ctx, tmp, dest)
	if err != nil {
		s.logger.Warn("study.upload.archive_failed", "req_id", rid, "object", dest, "error", err)
		return ""
	}
	return url
}
