package chat

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Turn // userID+"/"+documentID -> ordered turns
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Turn),
	}
}

func logKey(userID, documentID string) string {
	return userID + "/" + documentID
}

// Append adds a turn to the end of the document's log.
func (r *MemoryRepo) Append(ctx context.Context, userID, documentID string, role Role, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !role.Valid() {
		return ErrInvalidRole
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := logKey(userID, documentID)
	r.data[key] = append(r.data[key], Turn{
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// ListByDocument returns the document's turns in append order.
func (r *MemoryRepo) ListByDocument(ctx context.Context, userID, documentID string) ([]Turn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	turns := r.data[logKey(userID, documentID)]
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out, nil
}

// DeleteByDocument removes the whole log; absent logs are a no-op.
func (r *MemoryRepo) DeleteByDocument(ctx context.Context, userID, documentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, logKey(userID, documentID))
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
