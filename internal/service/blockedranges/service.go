package blockedranges

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/infra/events"
	blockedRepo "github.com/glossbook/scheduling-service/internal/infra/storage/blockedrange"
	"github.com/glossbook/scheduling-service/internal/service/blockedranges/models"
)

// Service сервис просмотра и снятия блокировок времени
// Создание блокировок живёт в отдельном usecase из-за многодневной раскладки
type Service struct {
	blockedRepo BlockedRangeRepository
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockedRepo BlockedRangeRepository, publisher EventPublisher, logger Logger) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// ListByPeriod возвращает блокировки за период, отсортированные по дате
func (s *Service) ListByPeriod(ctx context.Context, from, to time.Time) (*models.BlockedRangeListResponse, error) {
	s.logger.Info("ListByPeriod: fetching blocked ranges from=%s to=%s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	if to.Before(from) {
		s.logger.Warn("ListByPeriod: end date is before start date")
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	ranges, err := s.blockedRepo.ListByPeriod(ctx, from, to)
	if err != nil {
		s.logger.Error("ListByPeriod: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByPeriod - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByPeriod: successfully fetched %d blocked ranges", len(ranges))
	return models.FromDomainBlockedRangeList(ranges), nil
}

// Delete снимает блокировку, слоты этого дня снова попадают в выдачу
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting blocked range id=%d", id)

	date, err := s.blockedRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedRangeNotFound) {
			s.logger.Warn("Delete: blocked range id=%d not found", id)
			return ErrBlockedRangeNotFound
		}
		s.logger.Error("Delete: repository error for blocked range id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted blocked range id=%d", id)

	s.publisher.Publish(ctx, events.ChangeEvent{
		Kind: events.KindRangeUnblocked,
		Date: date.Format(domain.DateFormat),
	})

	return nil
}
