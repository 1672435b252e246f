package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/infra/events"
	bookingRepo "github.com/glossbook/scheduling-service/internal/infra/storage/booking"
	"github.com/glossbook/scheduling-service/internal/integrations/notifier"
	"github.com/glossbook/scheduling-service/internal/service/bookings/models"
)

// Service сервис для работы с записями вне сценария создания и переноса:
// просмотр, подтверждение, отмена, завершение
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	notifier     Notifier
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifierClient Notifier,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     notifierClient,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает запись по ID
// Пользователь может видеть только свою запись
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю записей пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Confirm подтверждает ожидающую оплаты запись (колбэк после успешной оплаты)
func (s *Service) Confirm(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d", bookingID)

	var confirmed *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		if err := booking.Confirm(); err != nil {
			return ErrInvalidTransition
		}
		booking.Paid = true

		if err := s.bookingRepo.Update(txCtx, booking); err != nil {
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}
		confirmed = booking
		return nil
	})
	if err != nil {
		s.logger.Warn("Confirm: failed for booking id=%d: %v", bookingID, err)
		return nil, err
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", bookingID)

	s.notifier.SendQuietly(ctx, &notifier.BookingEvent{
		Type:          notifier.EventBookingConfirmed,
		BookingRef:    confirmed.PublicRef.String(),
		ServiceName:   confirmed.ServiceName,
		CustomerName:  confirmed.CustomerName,
		CustomerEmail: confirmed.CustomerEmail,
		Date:          confirmed.ScheduledDate.Format(domain.DateFormat),
		StartTime:     confirmed.StartTime.String(),
	})

	return models.FromDomainBooking(confirmed), nil
}

// Cancel отменяет запись по запросу владельца
// Отменённая запись освобождает слот для других клиентов
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	var cancelled *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if booking.UserID != req.UserID {
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			return ErrCannotCancel
		}

		if err := booking.Cancel(req.CancellationReason, s.timeProvider.Now()); err != nil {
			return ErrCannotCancel
		}

		if err := s.bookingRepo.Update(txCtx, booking); err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
		cancelled = booking
		return nil
	})
	if err != nil {
		s.logger.Warn("Cancel: failed for booking id=%d: %v", bookingID, err)
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)

	s.notifier.SendQuietly(ctx, &notifier.BookingEvent{
		Type:          notifier.EventBookingCancelled,
		BookingRef:    cancelled.PublicRef.String(),
		ServiceName:   cancelled.ServiceName,
		CustomerName:  cancelled.CustomerName,
		CustomerEmail: cancelled.CustomerEmail,
		Date:          cancelled.ScheduledDate.Format(domain.DateFormat),
		StartTime:     cancelled.StartTime.String(),
		Reason:        cancelled.CancellationReason,
	})
	s.publisher.Publish(ctx, events.ChangeEvent{
		Kind:      events.KindBookingCancelled,
		Date:      cancelled.ScheduledDate.Format(domain.DateFormat),
		ServiceID: cancelled.ServiceID,
		BookingID: cancelled.ID,
	})

	return nil
}

// Complete переводит подтверждённую запись в completed после состоявшегося визита
// Вызывается оператором, владельческих проверок нет
func (s *Service) Complete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Complete: completing booking id=%d", bookingID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
		}

		if err := booking.Complete(); err != nil {
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.Update(txCtx, booking); err != nil {
			return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Complete: failed for booking id=%d: %v", bookingID, err)
		return err
	}

	s.logger.Info("Complete: successfully completed booking id=%d", bookingID)
	return nil
}
