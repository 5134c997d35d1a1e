package models

// Event defines the event model based on the 'events' table.
// Date and Time are kept as the wire strings ("2006-01-02" and "15:04:05");
// the database columns are DATE and TIME.
type Event struct {
	ID            int64  `json:"id" db:"id"`
	Title         string `json:"title" db:"title"`
	Description   string `json:"description" db:"description"`
	Location      string `json:"location" db:"location"`
	Date          string `json:"date" db:"date" example:"2025-09-12"`
	Time          string `json:"time" db:"time" example:"18:30:00"`
	CoordinatorID int64  `json:"coordinatorId" db:"coordinator_id"`
	Coordinator   *User  `json:"coordinator,omitempty"` // Relation, no db tag
}
