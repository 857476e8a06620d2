package documents

import "context"

// Repo defines persistence operations for documents.
type Repo interface {
	// Create writes the document atomically; it is never partially visible.
	Create(ctx context.Context, doc Document) error
	// GetByID returns ErrNotFound when the document does not exist or belongs
	// to another user.
	GetByID(ctx context.Context, userID, documentID string) (Document, error)
	// ListByUser returns the user's documents newest first.
	ListByUser(ctx context.Context, userID string) ([]Document, error)
	// Delete removes the document record. Deleting a non-existent document is
	// not an error.
	Delete(ctx context.Context, userID, documentID string) error
}
