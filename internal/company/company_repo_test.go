package company_test

import (
	"context"
	"testing"
	"time"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/company"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupCompanyRepoTest(t *testing.T) (company.Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return company.NewRepository(gdb), mock, func() { db.Close() }
}

func TestCompanyRepository_FindAllByOwner(t *testing.T) {
	repo, mock, cleanup := setupCompanyRepoTest(t)
	defer cleanup()

	userID := uuid.New().String()
	companyID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "avatar_color", "initial", "created_at", "updated_at"}).
		AddRow(companyID.String(), userID, "Acme", "#ff8800", "A", time.Now(), time.Now())

	mock.ExpectQuery(`(?s)SELECT.+FROM "companies".+user_id`).
		WithArgs(userID).
		WillReturnRows(rows)

	got, err := repo.FindAllByOwner(context.Background(), userID, "")

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_Summarize(t *testing.T) {
	repo, mock, cleanup := setupCompanyRepoTest(t)
	defer cleanup()

	userID := uuid.New().String()
	companyID := uuid.New()
	lastApplied := time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"company_id", "name", "avatar_color", "applications", "interviews", "last_applied"}).
		AddRow(companyID.String(), "Acme", "#ff8800", int64(4), int64(2), lastApplied)

	// Bind order: the status literal of the CASE expression, then the owner
	// filter of the WHERE clause.
	mock.ExpectQuery(`(?s)SELECT.+FROM "jobs".+JOIN companies.+GROUP BY`).
		WithArgs("Interview Scheduled", userID).
		WillReturnRows(rows)

	got, err := repo.Summarize(context.Background(), userID, "")

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, companyID, got[0].CompanyID)
	assert.Equal(t, int64(4), got[0].Applications)
	assert.Equal(t, int64(2), got[0].Interviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_Delete(t *testing.T) {
	t.Run("zero affected rows reads as record not found", func(t *testing.T) {
		repo, mock, cleanup := setupCompanyRepoTest(t)
		defer cleanup()

		userID := uuid.New().String()
		id := uuid.New().String()

		mock.ExpectBegin()
		mock.ExpectExec(`(?s)DELETE FROM "companies".+user_id`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), userID, id)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
