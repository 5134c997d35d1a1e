package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models/dto"
	"github.com/Amaldev1010/Archin-Eventmng/internal/app/repositories"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/apperrors"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/email"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/logger"
)

// IRegistrationService defines the interface for registration operations
type IRegistrationService interface {
	Register(ctx context.Context, userID, eventID int64) error
	Cancel(ctx context.Context, userID, eventID int64) error
	GetRegisteredEvents(ctx context.Context, userID int64) ([]dto.EventResponse, error)
	GetParticipants(ctx context.Context, eventID int64) ([]dto.ParticipantResponse, error)
}

// RegistrationService handles the registration lifecycle
type RegistrationService struct {
	registrationRepo repositories.IRegistrationRepository
	eventRepo        repositories.IEventRepository
	userRepo         repositories.IUserRepository
	mailService      email.MailService
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	registrationRepo repositories.IRegistrationRepository,
	eventRepo repositories.IEventRepository,
	userRepo repositories.IUserRepository,
	mailService email.MailService,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		mailService:      mailService,
	}
}

// Register registers a user for an event and sends a confirmation email.
// The unique (user_id, event_id) index guards the concurrent double-register.
func (s *RegistrationService) Register(ctx context.Context, userID, eventID int64) error {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return eventNotFoundError(err)
	}

	exists, err := s.registrationRepo.RegistrationExists(ctx, userID, eventID)
	if err != nil {
		return fmt.Errorf("error checking registration: %w", err)
	}
	if exists {
		return alreadyRegisteredError()
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := s.registrationRepo.CreateRegistration(ctx, userID, eventID); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyRegistered) {
			return alreadyRegisteredError()
		}
		return fmt.Errorf("error creating registration: %w", err)
	}

	logger.Info().Int64("userID", userID).Int64("eventID", eventID).Msg("User registered for event")

	// Mail failure never fails the registration
	if err := s.mailService.SendRegistrationConfirmation(user.Email, user.Username, event.Title); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Int64("eventID", eventID).Msg("Failed to send registration confirmation email")
	}

	return nil
}

// Cancel removes a user's registration and sends a cancellation email
func (s *RegistrationService) Cancel(ctx context.Context, userID, eventID int64) error {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return eventNotFoundError(err)
	}

	if err := s.registrationRepo.DeleteRegistration(ctx, userID, eventID); err != nil {
		if errors.Is(err, apperrors.ErrNotRegistered) {
			return apperrors.NewCustomError(apperrors.ErrNotRegistered, "You are not registered for this event.")
		}
		return fmt.Errorf("error cancelling registration: %w", err)
	}

	logger.Info().Int64("userID", userID).Int64("eventID", eventID).Msg("Registration cancelled")

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Failed to load user for cancellation email")
		return nil
	}

	// Mail failure never fails the cancellation
	if err := s.mailService.SendCancellationNotice(user.Email, user.Username, event.Title); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Int64("eventID", eventID).Msg("Failed to send cancellation email")
	}

	return nil
}

// GetRegisteredEvents lists the events a user is registered for
func (s *RegistrationService) GetRegisteredEvents(ctx context.Context, userID int64) ([]dto.EventResponse, error) {
	events, err := s.registrationRepo.GetEventsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewEventListResponse(events), nil
}

// GetParticipants lists every registration for an event with participant
// details. An unknown event yields an empty list.
func (s *RegistrationService) GetParticipants(ctx context.Context, eventID int64) ([]dto.ParticipantResponse, error) {
	registrations, err := s.registrationRepo.GetParticipantsByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	participants := make([]dto.ParticipantResponse, 0, len(registrations))
	for _, reg := range registrations {
		participants = append(participants, dto.ParticipantResponse{
			ID:          reg.ID,
			Name:        reg.User.Username,
			Email:       reg.User.Email,
			PhoneNumber: reg.User.PhoneNumber,
			Department:  reg.User.Department,
			YearOfStudy: reg.User.YearOfStudy,
			CollegeName: reg.User.CollegeName,
			EventTitle:  reg.Event.Title,
		})
	}

	return participants, nil
}

func alreadyRegisteredError() error {
	return apperrors.NewCustomError(apperrors.ErrAlreadyRegistered, "You have already registered for this event.")
}
