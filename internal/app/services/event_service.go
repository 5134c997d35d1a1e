package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models"
	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models/dto"
	"github.com/Amaldev1010/Archin-Eventmng/internal/app/repositories"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/apperrors"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/logger"
)

// IEventService defines the interface for event operations
type IEventService interface {
	CreateEvent(ctx context.Context, coordinatorID int64, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetAllEvents(ctx context.Context) ([]dto.EventResponse, error)
	GetMyEvents(ctx context.Context, coordinatorID int64) ([]dto.EventResponse, error)
	GetEvent(ctx context.Context, eventID int64) (*dto.EventResponse, error)
	UpdateEvent(ctx context.Context, userID, eventID int64, req *dto.UpdateEventRequest, partial bool) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, userID, eventID int64) error
}

// EventService handles event business rules
type EventService struct {
	eventRepo repositories.IEventRepository
	userRepo  repositories.IUserRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.IEventRepository, userRepo repositories.IUserRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

// CreateEvent creates an event owned by the authenticated caller
func (s *EventService) CreateEvent(ctx context.Context, coordinatorID int64, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	eventTime, err := normalizeTime(req.Time)
	if err != nil {
		return nil, err
	}

	coordinator, err := s.userRepo.GetUserByID(ctx, coordinatorID)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		Date:          date,
		Time:          eventTime,
		CoordinatorID: coordinatorID,
		Coordinator:   coordinator,
	}

	id, err := s.eventRepo.CreateEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	event.ID = id

	logger.Info().Int64("eventID", id).Int64("coordinatorID", coordinatorID).Msg("Event created")

	resp := dto.NewEventResponse(event)
	return &resp, nil
}

// GetAllEvents lists every event
func (s *EventService) GetAllEvents(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.eventRepo.GetAllEvents(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewEventListResponse(events), nil
}

// GetMyEvents lists the events owned by a coordinator
func (s *EventService) GetMyEvents(ctx context.Context, coordinatorID int64) ([]dto.EventResponse, error) {
	events, err := s.eventRepo.GetEventsByCoordinatorID(ctx, coordinatorID)
	if err != nil {
		return nil, err
	}
	return dto.NewEventListResponse(events), nil
}

// GetEvent retrieves a single event
func (s *EventService) GetEvent(ctx context.Context, eventID int64) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, eventNotFoundError(err)
	}
	resp := dto.NewEventResponse(event)
	return &resp, nil
}

// UpdateEvent applies a full (PUT) or partial (PATCH) update. Ownership is
// checked before any field is touched.
func (s *EventService) UpdateEvent(ctx context.Context, userID, eventID int64, req *dto.UpdateEventRequest, partial bool) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, eventNotFoundError(err)
	}

	if event.CoordinatorID != userID {
		return nil, apperrors.NewForbiddenError("Only the event coordinator can update this event.")
	}

	if !partial {
		if req.Title == nil || req.Description == nil || req.Location == nil || req.Date == nil || req.Time == nil {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "All fields are required: title, description, location, date, time.")
		}
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Date != nil {
		date, err := normalizeDate(*req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if req.Time != nil {
		eventTime, err := normalizeTime(*req.Time)
		if err != nil {
			return nil, err
		}
		event.Time = eventTime
	}

	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}

	logger.Info().Int64("eventID", eventID).Int64("coordinatorID", userID).Msg("Event updated")

	resp := dto.NewEventResponse(event)
	return &resp, nil
}

// DeleteEvent deletes an event owned by the caller. A missing event and an
// event owned by someone else both report the same not-found error.
func (s *EventService) DeleteEvent(ctx context.Context, userID, eventID int64) error {
	err := s.eventRepo.DeleteOwnedEvent(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return apperrors.NewCustomError(apperrors.ErrEventNotFound, "Event not found or not authorized")
		}
		return fmt.Errorf("error deleting event: %w", err)
	}

	logger.Info().Int64("eventID", eventID).Int64("coordinatorID", userID).Msg("Event deleted")
	return nil
}

// normalizeDate validates a YYYY-MM-DD date string
func normalizeDate(value string) (string, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrValidationFailed, "Date must be in YYYY-MM-DD format.")
	}
	return parsed.Format("2006-01-02"), nil
}

// normalizeTime validates an HH:MM or HH:MM:SS time string and always
// returns the HH:MM:SS form
func normalizeTime(value string) (string, error) {
	if parsed, err := time.Parse("15:04:05", value); err == nil {
		return parsed.Format("15:04:05"), nil
	}
	if parsed, err := time.Parse("15:04", value); err == nil {
		return parsed.Format("15:04:05"), nil
	}
	return "", apperrors.NewCustomError(apperrors.ErrValidationFailed, "Time must be in HH:MM or HH:MM:SS format.")
}

func eventNotFoundError(err error) error {
	if errors.Is(err, apperrors.ErrEventNotFound) {
		return apperrors.NewCustomError(apperrors.ErrEventNotFound, "Event not found.")
	}
	return err
}
