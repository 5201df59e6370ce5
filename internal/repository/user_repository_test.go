package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/talentgrid/interview-management-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestCountActiveAdmins_QueryShape(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	// the invariant counts only active admins, soft-deleted rows excluded
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE .*role = \\? AND active = \\?.* AND `users`\\.`deleted_at` IS NULL").
		WithArgs(string(models.RoleAdmin), true).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))

	count, err := repo.CountActiveAdmins()
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsername_QueryShape(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "role", "active"}).
		AddRow(1, "admin", string(models.RoleAdmin), true)
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WillReturnRows(rows)

	user, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	require.Equal(t, "admin", user.Username)
	require.Equal(t, models.RoleAdmin, user.Role)

	require.NoError(t, mock.ExpectationsWereMet())
}
