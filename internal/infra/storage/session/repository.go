package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/pkg/dbmetrics"
	"github.com/m04kA/SMC-BikeRental/pkg/psqlbuilder"
)

const tableName = "search_sessions"

var columns = []string{
	"id",
	"city",
	"pickup_at",
	"dropoff_at",
	"duration_days",
	"duration_hours",
	"package",
	"transmission",
	"branch",
	"brand",
	"login_step",
	"login_phone",
	"login_user",
	"updated_at",
}

// Repository хранит снимки сессий в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает снимок сессии по ID
func (r *Repository) Get(ctx context.Context, id string) (*domain.SessionSnapshot, error) {
	ctx = dbmetrics.WithOperation(ctx, "get_session")

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		snap      domain.SessionSnapshot
		pkg       string
		loginStep string
		loginUser sql.NullString
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&snap.ID,
		&snap.Search.City,
		&snap.Search.PickupAt,
		&snap.Search.DropoffAt,
		&snap.Search.Duration.Days,
		&snap.Search.Duration.Hours,
		&pkg,
		pq.Array(&snap.Filters.Transmission),
		pq.Array(&snap.Filters.Branch),
		pq.Array(&snap.Filters.Brand),
		&loginStep,
		&snap.Login.Phone,
		&loginUser,
		&snap.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan session: %v", ErrScanRow, err)
	}

	snap.Filters.Package = domain.PackageSelector(pkg)
	snap.Login.Step = domain.LoginStep(loginStep)

	if loginUser.Valid && loginUser.String != "" {
		var user domain.User
		if err := json.Unmarshal([]byte(loginUser.String), &user); err != nil {
			return nil, fmt.Errorf("%w: Get - decode login user: %v", ErrScanRow, err)
		}
		snap.Login.User = &user
	}

	return &snap, nil
}

// Save создает или заменяет снимок сессии
func (r *Repository) Save(ctx context.Context, snap *domain.SessionSnapshot) error {
	ctx = dbmetrics.WithOperation(ctx, "save_session")

	var loginUser sql.NullString
	if snap.Login.User != nil {
		raw, err := json.Marshal(snap.Login.User)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncodeUser, err)
		}
		loginUser = sql.NullString{String: string(raw), Valid: true}
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(
			snap.ID,
			snap.Search.City,
			snap.Search.PickupAt.UTC(),
			snap.Search.DropoffAt.UTC(),
			snap.Search.Duration.Days,
			snap.Search.Duration.Hours,
			string(snap.Filters.Package),
			pq.Array(nonNil(snap.Filters.Transmission)),
			pq.Array(nonNil(snap.Filters.Branch)),
			pq.Array(nonNil(snap.Filters.Brand)),
			string(snap.Login.Step),
			snap.Login.Phone,
			loginUser,
			snap.UpdatedAt.UTC(),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			city = EXCLUDED.city,
			pickup_at = EXCLUDED.pickup_at,
			dropoff_at = EXCLUDED.dropoff_at,
			duration_days = EXCLUDED.duration_days,
			duration_hours = EXCLUDED.duration_hours,
			package = EXCLUDED.package,
			transmission = EXCLUDED.transmission,
			branch = EXCLUDED.branch,
			brand = EXCLUDED.brand,
			login_step = EXCLUDED.login_step,
			login_phone = EXCLUDED.login_phone,
			login_user = EXCLUDED.login_user,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Delete удаляет снимок сессии
func (r *Repository) Delete(ctx context.Context, id string) error {
	ctx = dbmetrics.WithOperation(ctx, "delete_session")

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// DeleteExpired удаляет снимки, обновленные раньше before, и возвращает их количество
func (r *Repository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	ctx = dbmetrics.WithOperation(ctx, "delete_expired_sessions")

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Lt{"updated_at": before.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - rows affected: %v", ErrExecQuery, err)
	}
	return deleted, nil
}

// nonNil не дает pq записать NULL вместо пустого массива
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
