package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// EventRepository handles database operations for events, including the
// transactional approval fan-out.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// EventFilter narrows event listings. ViewerID/ViewerIsStaff implement
// visibility: non-staff viewers only see approved events plus their own
// submissions.
type EventFilter struct {
	Status        models.EventStatus
	CategoryID    int64
	Upcoming      bool
	ViewerID      int64
	ViewerIsStaff bool
}

const eventColumns = `e.id, e.title, e.description, e.start_datetime, e.end_datetime, e.location,
		e.capacity, e.category_id, e.created_by, e.advisor_id, e.advisor_email, e.approved_by,
		e.status, e.created_at, e.updated_at,
		(SELECT COUNT(*) FROM event_registrations r WHERE r.event_id = e.id) AS registered_count`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.StartDatetime,
		&event.EndDatetime,
		&event.Location,
		&event.Capacity,
		&event.CategoryID,
		&event.CreatedBy,
		&event.AdvisorID,
		&event.AdvisorEmail,
		&event.ApprovedBy,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.RegisteredCount,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a pending or approved event row without notifying anyone
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, start_datetime, end_datetime, location,
			capacity, category_id, created_by, advisor_id, advisor_email, approved_by, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.StartDatetime, event.EndDatetime,
		event.Location, event.Capacity, event.CategoryID, event.CreatedBy,
		event.AdvisorID, event.AdvisorEmail, event.ApprovedBy, event.Status,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// CreateApproved inserts an already-approved event and fans out one
// notification per user except the creator, in a single transaction.
func (r *EventRepository) CreateApproved(ctx context.Context, event *models.Event, message string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO events (title, description, start_datetime, end_datetime, location,
				capacity, category_id, created_by, advisor_id, advisor_email, approved_by, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id, created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			event.Title, event.Description, event.StartDatetime, event.EndDatetime,
			event.Location, event.Capacity, event.CategoryID, event.CreatedBy,
			event.AdvisorID, event.AdvisorEmail, event.ApprovedBy, event.Status,
		).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating event: %w", err)
		}

		return fanOutNotifications(ctx, tx, event.ID, event.CreatedBy, message)
	})
}

// fanOutNotifications inserts one notification row per user except the
// excluded one (the event creator).
func fanOutNotifications(ctx context.Context, tx pgx.Tx, eventID, excludeUserID int64, message string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notifications (user_id, event_id, message)
		SELECT id, $1, $2 FROM users WHERE id <> $3`,
		eventID, message, excludeUserID)
	if err != nil {
		return fmt.Errorf("error fanning out notifications: %w", err)
	}
	return nil
}

// GetByID retrieves an event by ID with its registration count
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return event, nil
}

func buildEventFilter(filter EventFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Status != "" {
		conditions = append(conditions, "e.status = "+arg(string(filter.Status)))
	}
	if filter.CategoryID > 0 {
		conditions = append(conditions, "e.category_id = "+arg(filter.CategoryID))
	}
	if filter.Upcoming {
		conditions = append(conditions, "e.start_datetime >= NOW()")
	}
	if !filter.ViewerIsStaff {
		conditions = append(conditions, "(e.status = 'approved' OR e.created_by = "+arg(filter.ViewerID)+")")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List retrieves a page of events matching the filter, newest start first
func (r *EventRepository) List(ctx context.Context, filter EventFilter, offset uint64, limit int) ([]*models.Event, error) {
	where, args := buildEventFilter(filter)

	query := `SELECT ` + eventColumns + ` FROM events e` + where +
		` ORDER BY e.start_datetime DESC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Count returns the number of events matching the filter
func (r *EventRepository) Count(ctx context.Context, filter EventFilter) (int64, error) {
	where, args := buildEventFilter(filter)

	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events e`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}

	return count, nil
}

// Update updates an event's editable fields
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, start_datetime = $3, end_datetime = $4,
			location = $5, capacity = $6, category_id = $7, advisor_id = $8,
			advisor_email = $9, updated_at = NOW()
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		event.Title, event.Description, event.StartDatetime, event.EndDatetime,
		event.Location, event.Capacity, event.CategoryID, event.AdvisorID,
		event.AdvisorEmail, event.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Approve transitions a pending event to approved and fans out notifications,
// all in one transaction. Approving an already-approved event is a no-op:
// alreadyApproved is returned true and no notifications are inserted.
func (r *EventRepository) Approve(ctx context.Context, eventID, approverID int64, message string) (alreadyApproved bool, err error) {
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var createdBy int64
		err := tx.QueryRow(ctx, `
			UPDATE events
			SET status = 'approved', approved_by = $2, updated_at = NOW()
			WHERE id = $1 AND status = 'pending'
			RETURNING created_by`,
			eventID, approverID).Scan(&createdBy)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Nothing was pending: distinguish missing / approved / rejected
				var status models.EventStatus
				if err := tx.QueryRow(ctx, `SELECT status FROM events WHERE id = $1`, eventID).Scan(&status); err != nil {
					if errors.Is(err, pgx.ErrNoRows) {
						return apperrors.ErrEventNotFound
					}
					return fmt.Errorf("error checking event status: %w", err)
				}
				switch status {
				case models.EventStatusApproved:
					alreadyApproved = true
					return nil
				case models.EventStatusRejected:
					return apperrors.ErrEventRejected
				default:
					return apperrors.ErrEventNotPending
				}
			}
			return fmt.Errorf("error approving event: %w", err)
		}

		return fanOutNotifications(ctx, tx, eventID, createdBy, message)
	})

	return alreadyApproved, err
}

// Reject transitions a pending event to rejected. No notifications are sent.
// Rejecting an already-rejected event is a no-op.
func (r *EventRepository) Reject(ctx context.Context, eventID, approverID int64) (alreadyRejected bool, err error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE events
		SET status = 'rejected', approved_by = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'`,
		eventID, approverID)
	if err != nil {
		return false, fmt.Errorf("error rejecting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var status models.EventStatus
		err := r.db.QueryRow(ctx, `SELECT status FROM events WHERE id = $1`, eventID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return false, apperrors.ErrEventNotFound
			}
			return false, fmt.Errorf("error checking event status: %w", err)
		}
		switch status {
		case models.EventStatusRejected:
			return true, nil
		default:
			return false, apperrors.ErrEventNotPending
		}
	}

	return false, nil
}

// Delete removes an event together with its registrations, favorites and
// notifications in a single transaction so no orphaned rows remain.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM event_registrations WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting event registrations: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM favorites WHERE item_type = 'event' AND item_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting event favorites: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM notifications WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting event notifications: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting event: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrEventNotFound
		}

		return nil
	})
}
