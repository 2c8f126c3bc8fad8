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

// CategoryRepository handles database operations for event categories
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.EventCategory, error) {
	query := `SELECT id, name, advisor_uid FROM event_categories WHERE id = $1`

	var category models.EventCategory
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name, &category.AdvisorUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error retrieving category: %w", err)
	}

	return &category, nil
}

// GetAll retrieves all categories
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.EventCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, advisor_uid FROM event_categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.EventCategory
	for rows.Next() {
		var category models.EventCategory
		if err := rows.Scan(&category.ID, &category.Name, &category.AdvisorUID); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
