package chat

import "time"

// Role tags who authored a turn. It is a closed two-value set, not an open
// string: the prompt renderer and the store both rely on that.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Valid reports whether the role is one of the two recognized values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleModel
}

// Turn is one persisted message in a document's conversation log. Turns are
// append-only and totally ordered by CreatedAt with insertion order breaking
// ties.
type Turn struct {
	Role      Role
	Text      string
	CreatedAt time.Time
}
