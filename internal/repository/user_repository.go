package repository

import (
	"context"
	"fmt"

	"github.com/webaplicationjsx/warehouse-backend/internal/database"
	"github.com/webaplicationjsx/warehouse-backend/internal/model"
)

// UserRepository is an interface that defines the methods required for user data management.
type UserRepository interface {
	// AddUser adds a new user to the database. A user whose username is already taken is ignored.
	AddUser(ctx context.Context, user *model.User) (err error)

	// GetAllUsers retrieves all users from the database.
	GetAllUsers(ctx context.Context) (users []*model.User, err error)
}

// UserRepositoryImpl implements the UserRepository interface.
type UserRepositoryImpl struct {
	db database.Database
}

// NewUserRepository creates a new UserRepositoryImpl instance with the provided database.
func NewUserRepository(db database.Database) *UserRepositoryImpl {
	return &UserRepositoryImpl{
		db: db,
	}
}

func (ur *UserRepositoryImpl) AddUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
	`

	if _, err := ur.db.ExecContext(ctx, query, user.Username, user.Password, user.Role); err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}

	return nil
}

func (ur *UserRepositoryImpl) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	query := "SELECT username, password, role FROM users"

	rows, err := ur.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.Username, &user.Password, &user.Role); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error in result set: %w", err)
	}

	return users, nil
}
