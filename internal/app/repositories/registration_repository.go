package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/dberrors"
)

// RegistrationRepository handles RSVP rows in event_registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Register inserts an RSVP with the capacity check and the insert in one
// transaction. The event row is locked so concurrent RSVPs cannot
// oversubscribe the event.
func (r *RegistrationRepository) Register(ctx context.Context, eventID, userID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var capacity int
		var status models.EventStatus
		err := tx.QueryRow(ctx,
			`SELECT capacity, status FROM events WHERE id = $1 FOR UPDATE`, eventID).
			Scan(&capacity, &status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrEventNotFound
			}
			return fmt.Errorf("error locking event: %w", err)
		}

		if status != models.EventStatusApproved {
			return apperrors.ErrEventNotApproved
		}

		var registered int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`, eventID).
			Scan(&registered)
		if err != nil {
			return fmt.Errorf("error counting registrations: %w", err)
		}

		if registered >= capacity {
			return apperrors.ErrEventFull
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO event_registrations (event_id, user_id) VALUES ($1, $2)`,
			eventID, userID)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "event_registrations_event_id_user_id_key") {
				return apperrors.ErrAlreadyRegistered
			}
			return fmt.Errorf("error inserting registration: %w", err)
		}

		return nil
	})
}

// Unregister removes a user's RSVP for an event
func (r *RegistrationRepository) Unregister(ctx context.Context, eventID, userID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2`,
		eventID, userID)
	if err != nil {
		return fmt.Errorf("error deleting registration: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationAbsent
	}

	return nil
}

// ListByEvent retrieves all registrations for an event with attendee details
func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID int64) ([]*models.EventRegistration, error) {
	query := `
		SELECT r.id, r.event_id, r.user_id, r.created_at,
			u.first_name, u.last_name, u.email
		FROM event_registrations r
		JOIN users u ON u.id = r.user_id
		WHERE r.event_id = $1
		ORDER BY r.created_at
	`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var registrations []*models.EventRegistration
	for rows.Next() {
		var reg models.EventRegistration
		var user models.User
		if err := rows.Scan(
			&reg.ID, &reg.EventID, &reg.UserID, &reg.CreatedAt,
			&user.FirstName, &user.LastName, &user.Email,
		); err != nil {
			return nil, err
		}
		user.ID = reg.UserID
		reg.User = &user
		registrations = append(registrations, &reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}

// CountByEvent returns the number of RSVPs for an event
func (r *RegistrationRepository) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`, eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting registrations: %w", err)
	}
	return count, nil
}
