package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/dberrors"
)

// FavoriteRepository handles database operations for favorites
type FavoriteRepository struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create inserts a favorite; duplicates surface as ErrFavoriteExists
func (r *FavoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	query := `
		INSERT INTO favorites (user_id, item_type, item_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		favorite.UserID, favorite.ItemType, favorite.ItemID,
	).Scan(&favorite.ID, &favorite.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "favorites_user_id_item_type_item_id_key") {
			return apperrors.ErrFavoriteExists
		}
		return fmt.Errorf("error creating favorite: %w", err)
	}

	return nil
}

// GetByID retrieves a favorite by ID
func (r *FavoriteRepository) GetByID(ctx context.Context, id int64) (*models.Favorite, error) {
	query := `SELECT id, user_id, item_type, item_id, created_at FROM favorites WHERE id = $1`

	var favorite models.Favorite
	err := r.db.QueryRow(ctx, query, id).Scan(
		&favorite.ID, &favorite.UserID, &favorite.ItemType, &favorite.ItemID, &favorite.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("error retrieving favorite: %w", err)
	}

	return &favorite, nil
}

// ListByUser retrieves all favorites belonging to a user, newest first
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Favorite, error) {
	query := `
		SELECT id, user_id, item_type, item_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*models.Favorite
	for rows.Next() {
		var favorite models.Favorite
		if err := rows.Scan(
			&favorite.ID, &favorite.UserID, &favorite.ItemType, &favorite.ItemID, &favorite.CreatedAt,
		); err != nil {
			return nil, err
		}
		favorites = append(favorites, &favorite)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return favorites, nil
}

// Delete removes a favorite by ID
func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting favorite: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFavoriteNotFound
	}

	return nil
}
