package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/glossbook/scheduling-service/internal/domain"
	serviceRepo "github.com/glossbook/scheduling-service/internal/infra/storage/service"
)

// UseCase use case для получения слотов услуги на дату
//
// Чтения идут без блокировок по снимку на момент запроса: устаревание
// допустимо, потому что перед фиксацией записи доступность в любом случае
// перепроверяется заново (create_booking, reschedule_booking)
type UseCase struct {
	bookingRepo  BookingRepository
	windowRepo   WindowRepository
	blockedRepo  BlockedRangeRepository
	serviceRepo  ServiceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	windowRepo WindowRepository,
	blockedRepo BlockedRangeRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		windowRepo:   windowRepo,
		blockedRepo:  blockedRepo,
		serviceRepo:  serviceRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
// Пустой список слотов - нормальный результат (выходной, всё занято или
// заблокировано), а не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 3. Прошедшие даты не имеют слотов
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return emptyResponse(req), nil
	}

	// 4. Окна доступности на день недели даты
	windows, err := uc.windowRepo.ListByDay(ctx, int(req.Date.Weekday()))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	// 5. Блокировки оператора на дату
	blocked, err := uc.blockedRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked ranges: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked ranges: %v", ErrInternal, err)
	}

	// 6. Открытые интервалы дня: окна минус блокировки
	open := domain.ResolveOpenIntervals(windows, blocked, req.Date)
	if len(open) == 0 && !req.IncludeBlocked {
		uc.logger.Info("GetAvailableSlots: no open intervals for service=%d, date=%s",
			req.ServiceID, req.Date.Format(domain.DateFormat))
		return emptyResponse(req), nil
	}

	// 7. Активные записи услуги на дату - единый снимок для всей генерации
	bookings, err := uc.bookingRepo.GetByServiceDate(ctx, req.ServiceID, req.Date, true)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Генерируем кандидатов и фильтруем
	gridWindows := domain.ResolveWindowIntervals(windows, req.Date)

	slots := make([]domain.TimeSlot, 0)
	for slot := range domain.GenerateSlots(
		req.Date,
		gridWindows,
		open,
		service.DurationMinutes,
		domain.SlotGranularityMinutes,
		bookings,
	) {
		if slot.Status == domain.SlotBlocked && !req.IncludeBlocked {
			continue
		}
		// Сегодняшние слоты, начало которых уже прошло, не предлагаются
		if isSameDay(req.Date, now) && slot.StartTime.IsBefore(currentTime(now)) {
			continue
		}
		slots = append(slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}

func emptyResponse(req *Request) *Response {
	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     []domain.TimeSlot{},
	}
}
