package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/infra/events"
	serviceRepo "github.com/glossbook/scheduling-service/internal/infra/storage/service"
	"github.com/glossbook/scheduling-service/internal/integrations/notifier"
)

// UseCase use case для создания записи на услугу
type UseCase struct {
	bookingRepo  BookingRepository
	windowRepo   WindowRepository
	blockedRepo  BlockedRangeRepository
	serviceRepo  ServiceRepository
	txManager    TxManager
	notifier     Notifier
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	windowRepo WindowRepository,
	blockedRepo BlockedRangeRepository,
	serviceRepo ServiceRepository,
	txManager TxManager,
	notifierClient Notifier,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		windowRepo:   windowRepo,
		blockedRepo:  blockedRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		notifier:     notifierClient,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
//
// Проверка доступности и вставка идут в одной serializable-транзакции:
// что бы клиент ни видел в списке слотов раньше, решающей является только
// перепроверка в момент коммита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, service=%d, date=%s, time=%s",
		req.UserID, req.ServiceID, req.ScheduledDate.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу (каталог меняется редко, чтение вне транзакции)
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	var created *domain.Booking

	// 3. Перепроверяем доступность и создаем запись атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkSlotAvailable(txCtx, req, service.DurationMinutes, 0); err != nil {
			return err
		}

		booking := uc.buildBooking(req, service)

		saved, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		created = saved
		return nil
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: transaction failed for user=%d, service=%d: %v",
			req.UserID, req.ServiceID, err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d ref=%s status=%s",
		created.ID, created.PublicRef, created.Status)

	// 4. Уведомление и событие ленты - после коммита, сбои не откатывают запись
	uc.notifier.SendQuietly(ctx, &notifier.BookingEvent{
		Type:          notifier.EventBookingCreated,
		BookingRef:    created.PublicRef.String(),
		ServiceName:   created.ServiceName,
		CustomerName:  created.CustomerName,
		CustomerEmail: created.CustomerEmail,
		Date:          created.ScheduledDate.Format(domain.DateFormat),
		StartTime:     created.StartTime.String(),
	})
	uc.publisher.Publish(ctx, events.ChangeEvent{
		Kind:      events.KindBookingCreated,
		Date:      created.ScheduledDate.Format(domain.DateFormat),
		ServiceID: created.ServiceID,
		BookingID: created.ID,
	})

	return newResponse(created), nil
}

// checkSlotAvailable перечитывает расписание внутри транзакции и проверяет слот
func (uc *UseCase) checkSlotAvailable(ctx context.Context, req *Request, durationMinutes int, excludeBookingID int64) error {
	windows, err := uc.windowRepo.ListByDay(ctx, int(req.ScheduledDate.Weekday()))
	if err != nil {
		return fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	blocked, err := uc.blockedRepo.ListByDate(ctx, req.ScheduledDate)
	if err != nil {
		return fmt.Errorf("%w: failed to get blocked ranges: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByServiceDate(ctx, req.ServiceID, req.ScheduledDate, true)
	if err != nil {
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	open := domain.ResolveOpenIntervals(windows, blocked, req.ScheduledDate)

	if err := domain.CheckSlot(open, bookings, req.StartTime, durationMinutes, excludeBookingID); err != nil {
		switch {
		case errors.Is(err, domain.ErrSlotConflict):
			return ErrSlotConflict
		case errors.Is(err, domain.ErrSlotUnavailable), errors.Is(err, domain.ErrInvalidInterval):
			return ErrSlotUnavailable
		default:
			return fmt.Errorf("%w: slot check failed: %v", ErrInternal, err)
		}
	}
	return nil
}

// buildBooking собирает доменную запись из запроса и карточки услуги
// Бесплатные услуги не требуют оплаты и подтверждаются сразу
func (uc *UseCase) buildBooking(req *Request, service *domain.Service) *domain.Booking {
	status := domain.StatusPending
	paid := false
	if service.IsFree() {
		status = domain.StatusConfirmed
		paid = true
	}

	return &domain.Booking{
		PublicRef:       uuid.New(),
		UserID:          req.UserID,
		ServiceID:       req.ServiceID,
		ScheduledDate:   req.ScheduledDate,
		StartTime:       req.StartTime,
		DurationMinutes: service.DurationMinutes,
		Status:          status,
		Paid:            paid,
		Price:           service.Price,
		ServiceName:     service.Name,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Notes:           req.Notes,
	}
}
