package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hraxis/hr-backend-go/internal/domain/user"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, email, password_hash, is_staff, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query, u.ID, u.Email, u.PasswordHash, u.IsStaff).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.email, u.password_hash, u.is_staff, u.created_at, u.updated_at, e.id
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE u.id = $1`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt, &u.EmployeeID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.email, u.password_hash, u.is_staff, u.created_at, u.updated_at, e.id
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE u.email = $1`

	var u user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt, &u.EmployeeID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}
