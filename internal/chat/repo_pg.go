package chat

import (
	"context"
	"database/sql"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Append inserts one turn. The bigserial primary key preserves insertion
// order when created_at timestamps collide.
func (r *PGRepo) Append(ctx context.Context, userID, documentID string, role Role, text string) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	const query = `
INSERT INTO chat_turns (document_id, user_id, role, turn_text, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(
		ctx,
		query,
		documentID,
		userID,
		string(role),
		text,
		time.Now().UTC(),
	)
	return err
}

// ListByDocument returns the document's turns, oldest first.
func (r *PGRepo) ListByDocument(ctx context.Context, userID, documentID string) ([]Turn, error) {
	const query = `
SELECT role, turn_text, created_at
FROM chat_turns
WHERE user_id = $1 AND document_id = $2
ORDER BY created_at, id`

	rows, err := r.DB.QueryContext(ctx, query, userID, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Turn
	for rows.Next() {
		var turn Turn
		var role string
		if err := rows.Scan(&role, &turn.Text, &turn.CreatedAt); err != nil {
			return nil, err
		}
		turn.Role = Role(role)
		out = append(out, turn)
	}
	return out, rows.Err()
}

// DeleteByDocument removes every turn for the document.
func (r *PGRepo) DeleteByDocument(ctx context.Context, userID, documentID string) error {
	const query = `
DELETE FROM chat_turns
WHERE user_id = $1 AND document_id = $2`
	_, err := r.DB.ExecContext(ctx, query, userID, documentID)
	return err
}

var _ Repo = (*PGRepo)(nil)
