package documents

import "time"

// Document represents one uploaded source file owned by a user: its display
// name plus the full extracted text. Text is immutable after creation.
type Document struct {
	ID        string
	UserID    string
	FileName  string
	Text      string
	CreatedAt time.Time
}
