package repository

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/smartstudy-ai/smartstudy-backend/internal/common"
)

const (
	usersCollection = "users"
	notesCollection = "notes"
)

// Note is one stored study-material document, organized per owner.
type Note struct {
	ID        string
	Title     string
	Result    map[string]any
	CreatedAt time.Time
}

// NoteRepository is the narrow document-store interface the service depends on.
type NoteRepository interface {
	Save(ctx context.Context, userID, title string, result map[string]any) (string, error)
	Get(ctx context.Context, userID, noteID string) (*Note, error)
}

type noteRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

func NewNoteRepository(client *firestore.Client, logger *slog.Logger) NoteRepository {
	return &noteRepository{
		client: client,
		logger: logger,
	}
}

func (r *noteRepository) notes(userID string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(userID).Collection(notesCollection)
}

// Save writes a note under users/{userID}/notes with a generated id.
func (r *noteRepository) Save(ctx context.Context, userID, title string, result map[string]any) (string, error) {
	doc := r.notes(userID).NewDoc()
	_, err := doc.Set(ctx, map[string]any{
		"title":      title,
		"result":     result,
		"created_at": firestore.ServerTimestamp,
	})
	if err != nil {
		r.logger.Error("repository.note.save_failed", "user_id", userID, "error", err)
		return "", common.WrapError(err, "save note")
	}
	r.logger.Info("repository.note.saved", "user_id", userID, "note_id", doc.ID)
	return doc.ID, nil
}

// Get fetches a note by owner and id, mapping missing documents to ErrNotFound.
func (r *noteRepository) Get(ctx context.Context, userID, noteID string) (*Note, error) {
	snap, err := r.notes(userID).Doc(noteID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, common.ErrNotFound
		}
		r.logger.Error("repository.note.get_failed", "user_id", userID, "note_id", noteID, "error", err)
		return nil, common.WrapError(err, "get note")
	}

	data := snap.Data()
	note := &Note{ID: snap.Ref.ID}
	if title, ok := data["title"].(string); ok {
		note.Title = title
	}
	if result, ok := data["result"].(map[string]any); ok {
		note.Result = result
	}
	if created, ok := data["created_at"].(time.Time); ok {
		note.CreatedAt = created
	}
	return note, nil
}
