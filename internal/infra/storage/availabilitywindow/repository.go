package availabilitywindow

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/pkg/dbmetrics"
	"github.com/glossbook/scheduling-service/pkg/psqlbuilder"
)

// Repository репозиторий еженедельного шаблона доступности
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll возвращает все окна шаблона, отсортированные по дню недели и времени
func (r *Repository) ListAll(ctx context.Context) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("availability_windows").
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// ListByDay возвращает окна шаблона для дня недели (0-6, 0 = воскресенье)
func (r *Repository) ListByDay(ctx context.Context, dayOfWeek int) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("availability_windows").
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// ReplaceAll заменяет весь шаблон новым набором окон
// Вызывается внутри транзакции: старый шаблон удаляется и новые окна
// вставляются атомарно, частичного состояния не бывает
func (r *Repository) ReplaceAll(ctx context.Context, windows []*domain.AvailabilityWindow) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_windows").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceAll - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return []*domain.AvailabilityWindow{}, nil
	}

	insertBuilder := psqlbuilder.Insert("availability_windows").
		Columns("day_of_week", "start_time", "end_time", "is_available")

	for _, w := range windows {
		insertBuilder = insertBuilder.Values(w.DayOfWeek, w.StartTime, w.EndTime, w.IsAvailable)
	}

	insertQuery, insertArgs, err := insertBuilder.
		Suffix("RETURNING id, day_of_week, start_time, end_time, is_available, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceAll - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceAll - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// scanWindows сканирует результаты запроса в слайс окон
func (r *Repository) scanWindows(rows *sql.Rows) ([]*domain.AvailabilityWindow, error) {
	windows := make([]*domain.AvailabilityWindow, 0)

	for rows.Next() {
		var window domain.AvailabilityWindow
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&window.ID,
			&window.DayOfWeek,
			&window.StartTime,
			&window.EndTime,
			&window.IsAvailable,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}

		window.CreatedAt = createdAt.Time
		window.UpdatedAt = updatedAt.Time

		windows = append(windows, &window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
