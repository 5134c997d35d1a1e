package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/apperrors"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/dberrors"
)

// IRegistrationRepository defines the interface for registration-related database operations
type IRegistrationRepository interface {
	CreateRegistration(ctx context.Context, userID, eventID int64) (int64, error)
	RegistrationExists(ctx context.Context, userID, eventID int64) (bool, error)
	DeleteRegistration(ctx context.Context, userID, eventID int64) error
	GetEventsByUserID(ctx context.Context, userID int64) ([]*models.Event, error)
	GetParticipantsByEventID(ctx context.Context, eventID int64) ([]*models.Registration, error)
}

// RegistrationRepository handles registration database operations
type RegistrationRepository struct {
	db           *pgxpool.Pool
	queryBuilder squirrel.StatementBuilderType
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db:           db,
		queryBuilder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateRegistration registers a user for an event. A concurrent duplicate
// insert trips the unique constraint and is reported as ErrAlreadyRegistered.
func (r *RegistrationRepository) CreateRegistration(ctx context.Context, userID, eventID int64) (int64, error) {
	query, args, err := r.queryBuilder.
		Insert("registrations").
		Columns("user_id", "event_id").
		Values(userID, eventID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building registration insert query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrAlreadyRegistered
		}
		return 0, fmt.Errorf("error creating registration: %w", err)
	}

	return id, nil
}

// RegistrationExists checks whether a user is registered for an event
func (r *RegistrationRepository) RegistrationExists(ctx context.Context, userID, eventID int64) (bool, error) {
	query, args, err := r.queryBuilder.
		Select("1").
		Prefix("SELECT EXISTS (").
		From("registrations").
		Where(squirrel.Eq{"user_id": userID, "event_id": eventID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building registration exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking registration: %w", err)
	}

	return exists, nil
}

// DeleteRegistration removes a user's registration for an event
func (r *RegistrationRepository) DeleteRegistration(ctx context.Context, userID, eventID int64) error {
	query, args, err := r.queryBuilder.
		Delete("registrations").
		Where(squirrel.Eq{"user_id": userID, "event_id": eventID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building registration delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting registration: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotRegistered
	}

	return nil
}

// GetEventsByUserID retrieves the events a user is registered for,
// most recent registration first
func (r *RegistrationRepository) GetEventsByUserID(ctx context.Context, userID int64) ([]*models.Event, error) {
	query, args, err := r.queryBuilder.
		Select(eventColumns...).
		From("registrations reg").
		Join("events e ON e.id = reg.event_id").
		Join("users u ON u.id = e.coordinator_id").
		Where(squirrel.Eq{"reg.user_id": userID}).
		OrderBy("reg.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building registered events query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registered events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		event := &models.Event{Coordinator: &models.User{}}
		err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.Location,
			&event.Date, &event.Time, &event.CoordinatorID,
			&event.Coordinator.ID, &event.Coordinator.Username, &event.Coordinator.Email,
			&event.Coordinator.Role, &event.Coordinator.PhoneNumber, &event.Coordinator.Department,
			&event.Coordinator.YearOfStudy, &event.Coordinator.CollegeName)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// GetParticipantsByEventID retrieves every registration for an event with the
// participant's profile and the event title populated
func (r *RegistrationRepository) GetParticipantsByEventID(ctx context.Context, eventID int64) ([]*models.Registration, error) {
	query, args, err := r.queryBuilder.
		Select(
			"reg.id", "reg.user_id", "reg.event_id", "reg.registered_at",
			"u.id", "u.username", "u.email", "u.role",
			"u.phone_number", "u.department", "u.year_of_study", "u.college_name",
			"e.title").
		From("registrations reg").
		Join("users u ON u.id = reg.user_id").
		Join("events e ON e.id = reg.event_id").
		Where(squirrel.Eq{"reg.event_id": eventID}).
		OrderBy("reg.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building participants query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving participants: %w", err)
	}
	defer rows.Close()

	registrations := make([]*models.Registration, 0)
	for rows.Next() {
		reg := &models.Registration{
			User:  &models.User{},
			Event: &models.Event{},
		}
		err := rows.Scan(
			&reg.ID, &reg.UserID, &reg.EventID, &reg.RegisteredAt,
			&reg.User.ID, &reg.User.Username, &reg.User.Email, &reg.User.Role,
			&reg.User.PhoneNumber, &reg.User.Department, &reg.User.YearOfStudy, &reg.User.CollegeName,
			&reg.Event.Title)
		if err != nil {
			return nil, fmt.Errorf("error scanning registration row: %w", err)
		}
		reg.Event.ID = reg.EventID
		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration rows: %w", err)
	}

	return registrations, nil
}
