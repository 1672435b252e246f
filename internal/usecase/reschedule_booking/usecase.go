package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/infra/events"
	bookingRepo "github.com/glossbook/scheduling-service/internal/infra/storage/booking"
	"github.com/glossbook/scheduling-service/internal/integrations/notifier"
)

// UseCase use case для переноса подтверждённой записи
type UseCase struct {
	bookingRepo  BookingRepository
	windowRepo   WindowRepository
	blockedRepo  BlockedRangeRepository
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
	txManager TxManager,
	notifierClient Notifier,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		windowRepo:   windowRepo,
		blockedRepo:  blockedRepo,
		txManager:    txManager,
		notifier:     notifierClient,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса записи
//
// Третий запрос на перенос отменяет запись вместо переноса, и в этом случае
// новый слот даже не проверяется: запись отменяется независимо от того,
// свободно ли запрошенное время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, user=%d, newDate=%s, newTime=%s",
		req.BookingID, req.UserID, req.NewDate.Format(domain.DateFormat), req.NewTime)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		updated *domain.Booking
		outcome domain.RescheduleOutcome
		oldDate string
	)

	// 2. Читаем запись под блокировкой, проверяем и применяем перенос атомарно
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.UserID != req.UserID {
			return ErrAccessDenied
		}

		if booking.Status != domain.StatusConfirmed {
			return ErrInvalidState
		}

		oldDate = booking.ScheduledDate.Format(domain.DateFormat)

		// Лимит исчерпан - слот проверять не нужно, запись отменяется
		if booking.RescheduleLimitReached() {
			out, err := booking.Reschedule(req.NewDate, req.NewTime, uc.timeProvider.Now())
			if err != nil {
				return fmt.Errorf("%w: reschedule transition failed: %v", ErrInternal, err)
			}
			if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
				return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
			}
			updated, outcome = booking, out
			return nil
		}

		// Обычный перенос: новый слот перепроверяется так же, как при создании,
		// текущая запись исключается из проверки конфликтов
		if err := uc.checkSlotAvailable(txCtx, booking, req); err != nil {
			return err
		}

		out, err := booking.Reschedule(req.NewDate, req.NewTime, uc.timeProvider.Now())
		if err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) {
				return ErrInvalidState
			}
			return fmt.Errorf("%w: reschedule transition failed: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
		updated, outcome = booking, out
		return nil
	})
	if err != nil {
		uc.logger.Warn("RescheduleBooking: transaction failed for booking=%d: %v", req.BookingID, err)
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking=%d outcome=%s status=%s count=%d",
		updated.ID, outcome, updated.Status, updated.RescheduleCount)

	// 3. Уведомление и события ленты - после коммита
	uc.sendNotification(ctx, updated, outcome)
	uc.publishEvents(ctx, updated, outcome, oldDate)

	return newResponse(updated, outcome), nil
}

// checkSlotAvailable перечитывает расписание внутри транзакции и проверяет новый слот
func (uc *UseCase) checkSlotAvailable(ctx context.Context, booking *domain.Booking, req *Request) error {
	windows, err := uc.windowRepo.ListByDay(ctx, int(req.NewDate.Weekday()))
	if err != nil {
		return fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	blocked, err := uc.blockedRepo.ListByDate(ctx, req.NewDate)
	if err != nil {
		return fmt.Errorf("%w: failed to get blocked ranges: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByServiceDate(ctx, booking.ServiceID, req.NewDate, true)
	if err != nil {
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	open := domain.ResolveOpenIntervals(windows, blocked, req.NewDate)

	if err := domain.CheckSlot(open, bookings, req.NewTime, booking.DurationMinutes, booking.ID); err != nil {
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

func (uc *UseCase) sendNotification(ctx context.Context, b *domain.Booking, outcome domain.RescheduleOutcome) {
	event := &notifier.BookingEvent{
		Type:          notifier.EventBookingRescheduled,
		BookingRef:    b.PublicRef.String(),
		ServiceName:   b.ServiceName,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Date:          b.ScheduledDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
	}
	if outcome == domain.OutcomeAutoCancelled {
		event.Type = notifier.EventBookingCancelled
		event.Reason = b.CancellationReason
	}
	uc.notifier.SendQuietly(ctx, event)
}

// publishEvents публикует изменение для обеих затронутых дат:
// старый день освободился, новый занялся (при автоотмене - только старый)
func (uc *UseCase) publishEvents(ctx context.Context, b *domain.Booking, outcome domain.RescheduleOutcome, oldDate string) {
	kind := events.KindBookingRescheduled
	if outcome == domain.OutcomeAutoCancelled {
		kind = events.KindBookingCancelled
	}

	uc.publisher.Publish(ctx, events.ChangeEvent{
		Kind:      kind,
		Date:      oldDate,
		ServiceID: b.ServiceID,
		BookingID: b.ID,
	})

	newDate := b.ScheduledDate.Format(domain.DateFormat)
	if outcome == domain.OutcomeRescheduled && newDate != oldDate {
		uc.publisher.Publish(ctx, events.ChangeEvent{
			Kind:      kind,
			Date:      newDate,
			ServiceID: b.ServiceID,
			BookingID: b.ID,
		})
	}
}
