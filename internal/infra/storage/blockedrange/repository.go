package blockedrange

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/pkg/dbmetrics"
	"github.com/glossbook/scheduling-service/pkg/psqlbuilder"
	"github.com/glossbook/scheduling-service/pkg/types"
)

// Repository репозиторий блокировок времени
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch вставляет все блокировки одного запроса единым INSERT
// Вставка атомарна: при отказе ни одна строка запроса не фиксируется
func (r *Repository) CreateBatch(ctx context.Context, ranges []*domain.BlockedRange) ([]*domain.BlockedRange, error) {
	if len(ranges) == 0 {
		return []*domain.BlockedRange{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("blocked_ranges").
		Columns("date", "start_time", "end_time", "all_day", "reason")

	for _, br := range ranges {
		insertBuilder = insertBuilder.Values(br.Date, nullableTime(br), nullableEndTime(br), br.AllDay, br.Reason)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, date, start_time, end_time, all_day, reason, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRanges(rows)
}

// ListByDate возвращает блокировки на конкретную дату
// Внутри транзакции выборка блокирует строки (FOR UPDATE): вставка блокировки
// и создание записи на ту же дату сериализуются между собой
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"date",
		"start_time",
		"end_time",
		"all_day",
		"reason",
		"created_at",
	).
		From("blocked_ranges").
		Where(squirrel.Eq{"date": date}).
		OrderBy("all_day DESC, start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRanges(rows)
}

// ListByPeriod возвращает блокировки за включительный период дат
// Используется админским календарём
func (r *Repository) ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.BlockedRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"start_time",
		"end_time",
		"all_day",
		"reason",
		"created_at",
	).
		From("blocked_ranges").
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC, all_day DESC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRanges(rows)
}

// Delete удаляет блокировку по ID и возвращает дату удалённой блокировки
func (r *Repository) Delete(ctx context.Context, id int64) (time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_ranges").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING date").
		ToSql()

	if err != nil {
		return time.Time{}, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	var date time.Time
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrBlockedRangeNotFound
		}
		return time.Time{}, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return date, nil
}

// nullableTime возвращает start_time для вставки
// Для блокировок на весь день времена в БД не хранятся
func nullableTime(br *domain.BlockedRange) interface{} {
	if br.AllDay {
		return nil
	}
	return br.StartTime
}

func nullableEndTime(br *domain.BlockedRange) interface{} {
	if br.AllDay {
		return nil
	}
	return br.EndTime
}

// scanRanges сканирует результаты запроса в слайс блокировок
func (r *Repository) scanRanges(rows *sql.Rows) ([]*domain.BlockedRange, error) {
	ranges := make([]*domain.BlockedRange, 0)

	for rows.Next() {
		var br domain.BlockedRange
		var startTime, endTime sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&br.ID,
			&br.Date,
			&startTime,
			&endTime,
			&br.AllDay,
			&br.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRanges - scan row: %v", ErrScanRow, err)
		}

		if startTime.Valid {
			br.StartTime = domainTime(startTime.String)
		}
		if endTime.Valid {
			br.EndTime = domainTime(endTime.String)
		}
		br.CreatedAt = createdAt.Time

		ranges = append(ranges, &br)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRanges - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// domainTime приводит значение postgres TIME (HH:MM:SS) к доменному формату
// Нулевые секунды отбрасываются: "18:00:00" -> "18:00", "23:59:59" остаётся как есть
func domainTime(raw string) types.TimeString {
	if len(raw) == 8 && strings.HasSuffix(raw, ":00") {
		return types.TimeString(raw[:5])
	}
	return types.TimeString(raw)
}
