package repository

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
)

// Open connects to Firestore for the given project.
func Open(ctx context.Context, projectID string, logger *slog.Logger) (*firestore.Client, error) {
	logger.Info("repository.connect", "project_id", projectID)
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		logger.Error("repository.connect_failed", "project_id", projectID, "error", err)
		return nil, err
	}
	logger.Info("repository.connected", "project_id", projectID)
	return client, nil
}

// Close closes the document store connection gracefully
func Close(client *firestore.Client, logger *slog.Logger) {
	if client == nil {
		return
	}
	logger.Info("repository.closing")
	if err := client.Close(); err != nil {
		logger.Error("repository.close_failed", "error", err)
	}
}
