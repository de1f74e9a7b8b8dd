package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/webaplicationjsx/warehouse-backend/internal/database"
	"github.com/webaplicationjsx/warehouse-backend/internal/model"
)

func newSQLMock(t *testing.T) (database.Database, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return database.NewPostgresDatabaseFromDB(db), mock
}

func TestUserRepositoryAddUser(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (username) DO NOTHING")).
		WithArgs("alice", "hash", "admin").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AddUser(context.Background(), &model.User{Username: "alice", Password: "hash", Role: "admin"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryAddUserDuplicateIsNoOp(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "hash", "admin").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AddUser(context.Background(), &model.User{Username: "alice", Password: "hash", Role: "admin"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryAddUserFailure(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := NewUserRepository(db)

	errOutage := errors.New("connection reset by peer")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnError(errOutage)

	err := repo.AddUser(context.Background(), &model.User{Username: "alice", Password: "hash", Role: "admin"})
	require.ErrorIs(t, err, errOutage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetAllUsers(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"username", "password", "role"}).
		AddRow("alice", "hash1", "admin").
		AddRow("bob", "hash2", "operator")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT username, password, role FROM users")).WillReturnRows(rows)

	users, err := repo.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, []*model.User{
		{Username: "alice", Password: "hash1", Role: "admin"},
		{Username: "bob", Password: "hash2", Role: "operator"},
	}, users)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetAllUsersEmpty(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"username", "password", "role"}))

	users, err := repo.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.NotNil(t, users)
	require.Empty(t, users)
}

func TestUserRepositoryGetAllUsersFailure(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := NewUserRepository(db)

	errOutage := errors.New("connection refused")
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnError(errOutage)

	_, err := repo.GetAllUsers(context.Background())
	require.ErrorIs(t, err, errOutage)
}
