package dto

import "github.com/Amaldev1010/Archin-Eventmng/internal/app/models"

// CreateEventRequest represents a new event. The coordinator is always the
// authenticated caller, never part of the request body.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

// UpdateEventRequest represents an event update. All fields are optional so
// the same body type serves PUT and PATCH; the service enforces that PUT
// carries every field.
type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
}

// EventResponse represents an event with its coordinator's public profile
type EventResponse struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Coordinator *UserResponse `json:"coordinator"`
}

// NewEventResponse maps an event model to its response form
func NewEventResponse(event *models.Event) EventResponse {
	resp := EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		Date:        event.Date,
		Time:        event.Time,
	}
	if event.Coordinator != nil {
		coordinator := NewUserResponse(event.Coordinator)
		resp.Coordinator = &coordinator
	}
	return resp
}

// NewEventListResponse maps a slice of event models
func NewEventListResponse(events []*models.Event) []EventResponse {
	responses := make([]EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, NewEventResponse(event))
	}
	return responses
}
