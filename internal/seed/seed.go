package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/pkg/auth"
	"github.com/campushub/campushub/internal/pkg/logger"
)

type seedUser struct {
	firstName string
	lastName  string
	email     string
	uid       string
	password  string
	roleID    int
}

type seedCategory struct {
	name       string
	advisorUID string
}

var users = []seedUser{
	{"System", "Admin", "admin@campus.edu", "adm1000", "ChangeMe!123", models.RoleIDAdmin},
	{"Alice", "Nguyen", "alice.nguyen@campus.edu", "fac1001", "ChangeMe!123", models.RoleIDFaculty},
	{"Robert", "Diaz", "robert.diaz@campus.edu", "fac1002", "ChangeMe!123", models.RoleIDFaculty},
	{"Mei", "Tanaka", "mei.tanaka@campus.edu", "fac1003", "ChangeMe!123", models.RoleIDFaculty},
}

var categories = []seedCategory{
	{"Academic", "fac1001"},
	{"Sports", "fac1002"},
	{"Cultural", "fac1003"},
	{"Career", "fac1001"},
	{"Social", ""},
}

// Run inserts the baseline categories and accounts. Existing rows are left
// untouched so the seed can run on every startup.
func Run(ctx context.Context, pool *pgxpool.Pool) error {
	for _, u := range users {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		tag, err := pool.Exec(ctx, `
			INSERT INTO users (first_name, last_name, email, user_uid, password_hash, role_id, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			ON CONFLICT (user_uid) DO NOTHING`,
			u.firstName, u.lastName, u.email, u.uid, hash, u.roleID)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.uid, err)
		}
		if tag.RowsAffected() > 0 {
			logger.Info().Str("uid", u.uid).Msg("Seeded user")
		}
	}

	for _, cat := range categories {
		tag, err := pool.Exec(ctx, `
			INSERT INTO event_categories (name, advisor_uid)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`,
			cat.name, cat.advisorUID)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", cat.name, err)
		}
		if tag.RowsAffected() > 0 {
			logger.Info().Str("category", cat.name).Msg("Seeded event category")
		}
	}

	return nil
}
