package domain

import "github.com/google/uuid"

// Actor identifies the authenticated caller of an operation. The
// administrator capability is carried explicitly so that permission checks
// never have to traverse from a user to its role.
type Actor struct {
	UserID        uuid.UUID
	Administrator bool
}

// Is reports whether the actor is the given user.
func (a Actor) Is(userID uuid.UUID) bool {
	return a.UserID == userID
}
