package service

import (
	"context"
	"fmt"

	"github.com/webaplicationjsx/warehouse-backend/internal/dto"
	"github.com/webaplicationjsx/warehouse-backend/internal/model"
	"github.com/webaplicationjsx/warehouse-backend/internal/repository"
	"github.com/webaplicationjsx/warehouse-backend/pkg/crypto"
	"github.com/webaplicationjsx/warehouse-backend/pkg/validation"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	// AddUser stores a new user. Adding a username that already exists succeeds without changing anything.
	AddUser(context.Context, *dto.UserCreateDTO) error

	// GetAllUsers lists every stored user.
	GetAllUsers(context.Context) ([]*dto.UserDTO, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userRepository repository.UserRepository
}

// NewUserService creates a new UserServiceImpl instance with the provided userRepository.
func NewUserService(userRepository repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{
		userRepository: userRepository,
	}
}

func (us *UserServiceImpl) AddUser(ctx context.Context, userCreate *dto.UserCreateDTO) error {
	if err := validation.ValidateUser(userCreate.Username, userCreate.Password, userCreate.Role); err != nil {
		return err
	}

	hashedPassword, err := crypto.HashPassword(userCreate.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return us.userRepository.AddUser(ctx, &model.User{
		Username: userCreate.Username,
		Password: hashedPassword,
		Role:     userCreate.Role,
	})
}

func (us *UserServiceImpl) GetAllUsers(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := us.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	userDTOs := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		userDTOs = append(userDTOs, &dto.UserDTO{
			Username: user.Username,
			Password: user.Password,
			Role:     user.Role,
		})
	}

	return userDTOs, nil
}
