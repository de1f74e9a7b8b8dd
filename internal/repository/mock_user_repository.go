package repository

import (
	"context"
	"sync"

	"github.com/webaplicationjsx/warehouse-backend/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository for testing purposes.
type MockUserRepository struct {
	mu             sync.Mutex
	Users          []*model.User // Users in insertion order
	LastInsertedID int           // To simulate auto-increment behavior
	Err            error         // Returned by every method when set
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make([]*model.User, 0),
	}
}

// AddUser is a mock implementation of AddUser method.
func (m *MockUserRepository) AddUser(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	for _, u := range m.Users {
		if u.Username == user.Username {
			return nil
		}
	}

	m.LastInsertedID++
	stored := *user
	stored.ID = m.LastInsertedID
	m.Users = append(m.Users, &stored)

	return nil
}

// GetAllUsers is a mock implementation of GetAllUsers method.
func (m *MockUserRepository) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	users := make([]*model.User, 0, len(m.Users))
	for _, u := range m.Users {
		user := *u
		users = append(users, &user)
	}

	return users, nil
}
