package postgresql

import (
	"context"

	"github.com/paylane/payroll-backend-go/internal/domain/user"
	"github.com/paylane/payroll-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Email, &found.PasswordHash, &found.Role, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}

	return found, nil
}

// GetByEmail implements user.UserRepository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, email).
		Scan(&found.ID, &found.Email, &found.PasswordHash, &found.Role, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}

	return found, nil
}

// Create implements user.UserRepository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, role, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query, newUser.Email, newUser.PasswordHash, newUser.Role).
		Scan(&created.ID, &created.Email, &created.PasswordHash, &created.Role, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}
