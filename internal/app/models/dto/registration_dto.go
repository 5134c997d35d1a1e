package dto

// ParticipantResponse represents one registration row expanded with the
// participant's contact fields and the event title, for coordinator consumption.
type ParticipantResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Department  *string `json:"department"`
	YearOfStudy *string `json:"year_of_study"`
	CollegeName *string `json:"college_name"`
	EventTitle  string  `json:"event_title"`
}
