package chat

import "context"

// Repo defines persistence operations for a document's conversation log.
type Repo interface {
	// Append assigns the server timestamp and appends the turn. Append order
	// for one document reflects the order in which calls were issued.
	Append(ctx context.Context, userID, documentID string, role Role, text string) error
	// ListByDocument returns the document's turns, oldest first, in a stable
	// total order.
	ListByDocument(ctx context.Context, userID, documentID string) ([]Turn, error)
	// DeleteByDocument removes every turn for the document.
	DeleteByDocument(ctx context.Context, userID, documentID string) error
}
