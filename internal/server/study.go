package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartstudy-ai/smartstudy-backend/internal/common"
	"github.com/smartstudy-ai/smartstudy-backend/internal/extract"
	"github.com/smartstudy-ai/smartstudy-backend/internal/llm"
)

const defaultFlashcardTitle = "MCQ & Flashcards"

// ProcessText turns submitted text into a persisted summary note.
func (s *StudyService) ProcessText(c *gin.Context) {
	userID := c.PostForm("user_id")
	title := c.PostForm("title")
	text := c.PostForm("text")

	v := common.NewValidator().
		Field("user_id", userID, common.Required).
		Field("title", title, common.Required, common.MaxLen(200)).
		Field("text", text, common.Required)
	if v.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"error": v.ErrorMessage()})
		return
	}

	ctx := common.WithUserID(c.Request.Context(), userID)
	rid := common.RequestIDFromContext(ctx)

	resp, err := s.gen.Generate(ctx, llm.BuildSummaryPrompt(text), llm.SummaryMaxOutputTokens)
	if err != nil {
		s.logger.Error("study.process_text.model_failed", "req_id", rid, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "model call failed"})
		return
	}

	result := extract.ParseModelResponse(resp)
	doc := result.Document()

	docID, err := s.persist(ctx, userID, title, doc)
	if err != nil {
		s.logger.Error("study.process_text.save_failed", "req_id", rid, "user_id", userID, "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": "could not save note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"doc_id": docID,
		"result": doc,
	})
}

// GenerateMCQFlashcards builds flashcards from submitted text or a stored
// note and responds with the rendered question/answer text.
func (s *StudyService) GenerateMCQFlashcards(c *gin.Context) {
	userID := c.PostForm("user_id")
	sourceText := c.PostForm("source_text")
	noteID := c.PostForm("doc_id")
	title := c.DefaultPostForm("title", defaultFlashcardTitle)

	v := common.NewValidator().Field("user_id", userID, common.Required)
	if v.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"error": v.ErrorMessage()})
		return
	}
	if sourceText == "" && noteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide source_text or doc_id"})
		return
	}

	ctx := common.WithUserID(c.Request.Context(), userID)
	rid := common.RequestIDFromContext(ctx)

	text := sourceText
	if noteID != "" {
		note, err := s.notes.Get(ctx, userID, noteID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "doc_id not found"})
				return
			}
			s.logger.Error("study.flashcards.load_failed", "req_id", rid, "doc_id", noteID, "error", err)
			c.JSON(common.HTTPStatus(err), gin.H{"error": "could not load note"})
			return
		}
		text = sourceFromNote(note)
	}

	resp, err := s.gen.Generate(ctx, llm.BuildFlashcardPrompt(text), llm.FlashcardMaxOutputTokens)
	if err != nil {
		s.logger.Error("study.flashcards.model_failed", "req_id", rid, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "model call failed"})
		return
	}

	result := extract.ParseModelResponse(resp)

	// Persistence is best effort here: a storage hiccup must not cost the
	// user their generated material.
	var docID any
	if id, err := s.persist(ctx, userID, title, result.Document()); err != nil {
		s.logger.Warn("study.flashcards.save_failed", "req_id", rid, "user_id", userID, "error", err)
	} else {
		docID = id
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"doc_id": docID,
		"result": extract.RenderText(result),
	})
}
