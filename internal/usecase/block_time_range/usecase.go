package block_time_range

import (
	"context"
	"errors"
	"fmt"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/infra/events"
)

// UseCase use case для блокировки диапазона времени оператором
//
// Многодневный запрос раскладывается на однодневные блокировки ещё в домене,
// поэтому хранение и вычитание из окон всегда работают с границами одного дня
type UseCase struct {
	blockedRepo BlockedRangeRepository
	txManager   TxManager
	publisher   EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockedRepo BlockedRangeRepository,
	txManager TxManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockedRepo: blockedRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute выполняет use case блокировки диапазона
// Блокировка не отменяет уже существующие записи в диапазоне, она только
// убирает слоты из дальнейшей выдачи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockTimeRange: start=%s, end=%s, allDay=%t",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.AllDay)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BlockTimeRange: validation failed: %v", err)
		return nil, err
	}

	// 2. Раскладываем запрос на однодневные блокировки
	ranges, err := domain.ExpandBlockRequest(domain.BlockRequest{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		AllDay:    req.AllDay,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDateRange):
			return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
		case errors.Is(err, domain.ErrInvalidInterval):
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimes, err)
		default:
			return nil, fmt.Errorf("%w: failed to expand block request: %v", ErrInternal, err)
		}
	}

	// 3. Сохраняем весь диапазон атомарно: либо все дни, либо ни одного
	var saved []*domain.BlockedRange
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.blockedRepo.CreateBatch(txCtx, ranges)
		if err != nil {
			return fmt.Errorf("%w: failed to create blocked ranges: %v", ErrInternal, err)
		}
		saved = created
		return nil
	})
	if err != nil {
		uc.logger.Error("BlockTimeRange: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BlockTimeRange: created %d blocked ranges", len(saved))

	// 4. Событие ленты на каждый затронутый день - после коммита
	for _, r := range saved {
		uc.publisher.Publish(ctx, events.ChangeEvent{
			Kind: events.KindRangeBlocked,
			Date: r.Date.Format(domain.DateFormat),
		})
	}

	return &Response{Ranges: saved}, nil
}
