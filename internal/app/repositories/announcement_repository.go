package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

const announcementColumns = `id, title, content, priority, created_by, created_at, updated_at`

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Priority, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	query := `
		INSERT INTO announcements (title, content, priority, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		announcement.Title, announcement.Content, announcement.Priority, announcement.CreatedBy,
	).Scan(&announcement.ID, &announcement.CreatedAt, &announcement.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}

	return nil
}

// GetByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE id = $1`

	announcement, err := scanAnnouncement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("error retrieving announcement: %w", err)
	}

	return announcement, nil
}

// List retrieves a page of announcements, newest first, optionally filtered
// by priority
func (r *AnnouncementRepository) List(ctx context.Context, priority models.Priority, offset uint64, limit int) ([]*models.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements`
	var args []interface{}

	if priority != "" {
		query += ` WHERE priority = $1`
		args = append(args, string(priority))
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		announcement, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, announcement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return announcements, nil
}

// Count returns the number of announcements, optionally filtered by priority
func (r *AnnouncementRepository) Count(ctx context.Context, priority models.Priority) (int64, error) {
	query := `SELECT COUNT(*) FROM announcements`
	var args []interface{}

	if priority != "" {
		query += ` WHERE priority = $1`
		args = append(args, string(priority))
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting announcements: %w", err)
	}

	return count, nil
}

// Update updates an existing announcement
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $1, content = $2, priority = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		announcement.Title, announcement.Content, announcement.Priority, announcement.ID)
	if err != nil {
		return fmt.Errorf("error updating announcement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}

	return nil
}

// Delete removes an announcement and any favorites pointing at it
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM favorites WHERE item_type = 'announcement' AND item_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting announcement favorites: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting announcement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}

	return nil
}
