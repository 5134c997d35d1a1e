package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/apperrors"
)

// IEventRepository defines the interface for event-related database operations
type IEventRepository interface {
	CreateEvent(ctx context.Context, event *models.Event) (int64, error)
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]*models.Event, error)
	GetEventsByCoordinatorID(ctx context.Context, coordinatorID int64) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteOwnedEvent(ctx context.Context, id, coordinatorID int64) error
}

// EventRepository handles event database operations
type EventRepository struct {
	db           *pgxpool.Pool
	queryBuilder squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db:           db,
		queryBuilder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// eventColumns lists the event row plus the joined coordinator profile.
// date and time are cast to text so they scan into the model's string fields.
var eventColumns = []string{
	"e.id", "e.title", "e.description", "e.location",
	"e.date::text", "e.time::text", "e.coordinator_id",
	"u.id", "u.username", "u.email", "u.role",
	"u.phone_number", "u.department", "u.year_of_study", "u.college_name",
}

// CreateEvent creates a new event
func (r *EventRepository) CreateEvent(ctx context.Context, event *models.Event) (int64, error) {
	query, args, err := r.queryBuilder.
		Insert("events").
		Columns("title", "description", "location", "date", "time", "coordinator_id").
		Values(event.Title, event.Description, event.Location, event.Date, event.Time, event.CoordinatorID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building event insert query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	return id, nil
}

// GetEventByID retrieves an event with its coordinator
func (r *EventRepository) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	query, args, err := r.queryBuilder.
		Select(eventColumns...).
		From("events e").
		Join("users u ON u.id = e.coordinator_id").
		Where(squirrel.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building event query: %w", err)
	}

	event, err := r.scanEventRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return event, nil
}

// GetAllEvents retrieves every event, newest first
func (r *EventRepository) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	query, args, err := r.queryBuilder.
		Select(eventColumns...).
		From("events e").
		Join("users u ON u.id = e.coordinator_id").
		OrderBy("e.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building events query: %w", err)
	}

	return r.queryEvents(ctx, query, args...)
}

// GetEventsByCoordinatorID retrieves the events owned by a coordinator
func (r *EventRepository) GetEventsByCoordinatorID(ctx context.Context, coordinatorID int64) ([]*models.Event, error) {
	query, args, err := r.queryBuilder.
		Select(eventColumns...).
		From("events e").
		Join("users u ON u.id = e.coordinator_id").
		Where(squirrel.Eq{"e.coordinator_id": coordinatorID}).
		OrderBy("e.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building events query: %w", err)
	}

	return r.queryEvents(ctx, query, args...)
}

// UpdateEvent writes the event's current field values back to its row
func (r *EventRepository) UpdateEvent(ctx context.Context, event *models.Event) error {
	query, args, err := r.queryBuilder.
		Update("events").
		Set("title", event.Title).
		Set("description", event.Description).
		Set("location", event.Location).
		Set("date", event.Date).
		Set("time", event.Time).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building event update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// DeleteOwnedEvent deletes an event only when it belongs to the given
// coordinator. A missing event and a foreign one are indistinguishable here.
func (r *EventRepository) DeleteOwnedEvent(ctx context.Context, id, coordinatorID int64) error {
	query, args, err := r.queryBuilder.
		Delete("events").
		Where(squirrel.Eq{"id": id, "coordinator_id": coordinatorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building event delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		event, err := r.scanEventRow(rows)
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

func (r *EventRepository) scanEventRow(row pgx.Row) (*models.Event, error) {
	event := &models.Event{Coordinator: &models.User{}}
	err := row.Scan(
		&event.ID, &event.Title, &event.Description, &event.Location,
		&event.Date, &event.Time, &event.CoordinatorID,
		&event.Coordinator.ID, &event.Coordinator.Username, &event.Coordinator.Email,
		&event.Coordinator.Role, &event.Coordinator.PhoneNumber, &event.Coordinator.Department,
		&event.Coordinator.YearOfStudy, &event.Coordinator.CollegeName)
	if err != nil {
		return nil, err
	}
	return event, nil
}
