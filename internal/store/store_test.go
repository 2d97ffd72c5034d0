package store

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// Any matches any driver value in sqlmock expectations.
type Any struct{}

func (Any) Match(v driver.Value) bool { return true }

func TestGormStore_CreateUser_DefaultPermissions(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WithArgs(int64(7), "joao", "secret", Any{}).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "permissions"`)).
		WithArgs(int64(3), false, false, false, false, false, false, false, false, false, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	user := model.User{ProfessionalID: 7, Username: "joao", Password: "secret"}
	err := s.CreateUser(context.Background(), &user)
	require.NoError(t, err)

	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, int64(3), user.Permission.UserID)
	assert.False(t, user.Permission.Admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CloseOccurrence(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	startedAt := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	returnedAt := startedAt.Add(150 * time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "occurrences" WHERE "occurrences"."id" = $1`)).
		WithArgs(int64(5), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "started_at", "status"}).
			AddRow(5, 2, startedAt, "in_progress"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "occurrences" SET`)).
		WithArgs("fixed hydraulic hose", Any{}, "completed", 150, Any{}, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.CloseOccurrence(context.Background(), 5, returnedAt, "fixed hydraulic hose")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CloseOccurrence_NotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "occurrences" WHERE "occurrences"."id" = $1`)).
		WithArgs(int64(99), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := s.CloseOccurrence(context.Background(), 99, time.Now(), "")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Authenticate_BadCredentials(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 AND password = $2`)).
		WithArgs("adm", "wrong", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.Authenticate(context.Background(), "adm", "wrong")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_ListWeather_MonthFilter(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "weather_events" WHERE date LIKE $1`)).
		WithArgs("2024-02-%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "intensity"}).
			AddRow(1, "2024-02-10", "heavy").
			AddRow(2, "2024-02-29", "light"))

	events, err := s.ListWeather(context.Background(), time.February, 2024)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "2024-02-10", events[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}
