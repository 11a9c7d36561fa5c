package session

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

const sessionID = "5f0c2b7e-8a43-4c36-9f3a-0d3a3b9a1e21"

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func sampleSnapshot() *domain.SessionSnapshot {
	pickup := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)
	return &domain.SessionSnapshot{
		ID: sessionID,
		Search: domain.SearchState{
			City:      "Dhaka",
			PickupAt:  pickup,
			DropoffAt: pickup.Add(24 * time.Hour),
			Duration:  domain.Duration{Days: 1},
		},
		Filters: domain.FilterState{
			Package:      domain.Package7Days,
			Transmission: []string{"manual"},
		},
		Login: domain.LoginState{
			Step:  domain.LoginStepDone,
			Phone: "01712345678",
			User:  &domain.User{ID: "u1", Name: "Rahim", Phone: "01712345678", Role: domain.RoleUser},
		},
		UpdatedAt: pickup,
	}
}

func TestRepository_Get(t *testing.T) {
	repo, mock := newMockRepo(t)
	pickup := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(columns).AddRow(
		sessionID, "Dhaka", pickup, pickup.Add(48*time.Hour), 2, 0,
		"7days", "{manual,automatic}", "{Gulshan}", "{}",
		"done", "01712345678", `{"id":"u1","name":"Rahim","phone":"01712345678","role":"user"}`,
		pickup,
	)
	mock.ExpectQuery(`SELECT (.+) FROM search_sessions WHERE id = \$1`).
		WithArgs(sessionID).
		WillReturnRows(rows)

	snap, err := repo.Get(context.Background(), sessionID)
	require.NoError(t, err)

	assert.Equal(t, "Dhaka", snap.Search.City)
	assert.Equal(t, domain.Duration{Days: 2}, snap.Search.Duration)
	assert.Equal(t, domain.Package7Days, snap.Filters.Package)
	assert.Equal(t, []string{"manual", "automatic"}, snap.Filters.Transmission)
	assert.Equal(t, []string{"Gulshan"}, snap.Filters.Branch)
	assert.Empty(t, snap.Filters.Brand)
	assert.Equal(t, domain.LoginStepDone, snap.Login.Step)
	require.NotNil(t, snap.Login.User)
	assert.Equal(t, "Rahim", snap.Login.User.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM search_sessions WHERE id = \$1`).
		WithArgs(sessionID).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.Get(context.Background(), sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save(t *testing.T) {
	repo, mock := newMockRepo(t)
	snap := sampleSnapshot()

	args := make([]driver.Value, len(columns))
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	mock.ExpectExec(`INSERT INTO search_sessions (.+) ON CONFLICT \(id\) DO UPDATE SET`).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), snap))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO search_sessions`).
		WillReturnError(errors.New("connection reset"))

	err := repo.Save(context.Background(), sampleSnapshot())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM search_sessions WHERE id = \$1`).
		WithArgs(sessionID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), sessionID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteExpired(t *testing.T) {
	repo, mock := newMockRepo(t)
	before := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`DELETE FROM search_sessions WHERE updated_at < \$1`).
		WithArgs(before).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpired(context.Background(), before)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
