package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jokepatra/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT id, email, password, role, created_at FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// UpsertUser inserts the user or, when the email exists, replaces its password
// hash and role. user.Password must already be hashed.
func (r *userRepository) UpsertUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password, role, created_at)
		VALUES (:id, :email, :password, :role, :created_at)
		ON CONFLICT (email) DO UPDATE
		SET password = EXCLUDED.password, role = EXCLUDED.role
	`

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}
