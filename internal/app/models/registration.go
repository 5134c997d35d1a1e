package models

import (
	"time"
)

// Registration links a participant to an event they registered for.
// The (user_id, event_id) pair is unique.
type Registration struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	EventID      int64     `json:"eventId" db:"event_id"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`
	User         *User     `json:"user,omitempty"`  // Relation, no db tag
	Event        *Event    `json:"event,omitempty"` // Relation, no db tag
}
