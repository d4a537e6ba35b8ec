package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/smartstudy-ai/smartstudy-backend/internal/common"
	"github.com/smartstudy-ai/smartstudy-backend/internal/extract"
	"github.com/smartstudy-ai/smartstudy-backend/internal/llm"
	"github.com/smartstudy-ai/smartstudy-backend/internal/repository"
	"github.com/smartstudy-ai/smartstudy-backend/internal/storage"
)

// StudyService wires the extraction pipeline to its collaborators: the model
// client, the document store, and the object store.
type StudyService struct {
	gen    llm.Generator
	notes  repository.NoteRepository
	files  storage.Uploader
	cfg    common.ServerConfig
	logger *slog.Logger
}

func NewStudyService(gen llm.Generator, notes repository.NoteRepository, files storage.Uploader, cfg common.ServerConfig, logger *slog.Logger) *StudyService {
	return &StudyService{
		gen:    gen,
		notes:  notes,
		files:  files,
		cfg:    cfg,
		logger: logger,
	}
}

// persist validates and saves an extraction document, returning the generated
// note id. Schema mismatches only log; extraction output is stored as-is.
func (s *StudyService) persist(ctx context.Context, userID, title string, doc map[string]any) (string, error) {
	if err := extract.ValidateDocument(doc); err != nil {
		s.logger.Warn("study.validate.failed",
			"req_id", common.RequestIDFromContext(ctx),
			"user_id", common.UserIDFromContext(ctx),
			"error", err,
		)
	}
	return s.notes.Save(ctx, userID, title, doc)
}

// sourceFromNote picks the text to build follow-up material from: the stored
// summary, else raw output, else the JSON-encoded result.
func sourceFromNote(note *repository.Note) string {
	if s, ok := note.Result["summary"].(string); ok && s != "" {
		return s
	}
	if s, ok := note.Result["raw_output"].(string); ok && s != "" {
		return s
	}
	b, err := json.Marshal(note.Result)
	if err != nil {
		return ""
	}
	return string(b)
}
