package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"docchat-backend/internal/extract"
	"docchat-backend/internal/shared/metrics"
	"docchat-backend/internal/shared/telemetry"
)

// TurnPurger removes a document's conversation log. Satisfied by the chat
// turn repositories.
type TurnPurger interface {
	DeleteByDocument(ctx context.Context, userID, documentID string) error
}

// Service contains business logic for documents.
type Service struct {
	Repo  Repo
	Turns TurnPurger
}

// Upload extracts text from the payload and records the document. Extraction
// must succeed and yield non-empty text before anything is written; on any
// failure the store is untouched.
func (s *Service) Upload(ctx context.Context, userID, fileName string, data []byte) (Document, error) {
	if userID == "" || fileName == "" {
		return Document{}, ErrInvalidInput
	}

	text, err := extract.Text(ctx, data, fileName)
	if err != nil {
		return Document{}, err
	}
	if text == "" {
		return Document{}, ErrEmptyDocument
	}

	doc := Document{
		ID:        uuid.NewString(),
		UserID:    userID,
		FileName:  fileName,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("create document: %w", err)
	}

	metrics.IncDocumentUploaded()
	telemetry.Info("document.created", map[string]any{
		"user_id":     userID,
		"document_id": doc.ID,
		"file_name":   fileName,
		"chars":       len(text),
	})
	return doc, nil
}

// Get returns one document for a user.
func (s *Service) Get(ctx context.Context, userID, documentID string) (Document, error) {
	if userID == "" || documentID == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, documentID)
}

// List returns the user's documents, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Document, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Delete removes a document and its conversation log. Turns are purged before
// the document record so no orphaned turns stay reachable; deleting a
// non-existent document is not an error.
func (s *Service) Delete(ctx context.Context, userID, documentID string) error {
	if userID == "" || documentID == "" {
		return ErrInvalidInput
	}
	if err := s.Turns.DeleteByDocument(ctx, userID, documentID); err != nil {
		return fmt.Errorf("delete chat turns: %w", err)
	}
	if err := s.Repo.Delete(ctx, userID, documentID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	metrics.IncDocumentDeleted()
	return nil
}
