package domain

import "github.com/glossbook/scheduling-service/pkg/types"

// Default configuration values
const (
	// SlotGranularityMinutes шаг сетки слотов - минимальная единица времени в UI
	SlotGranularityMinutes = 30

	// MaxReschedules максимальное количество переносов подтверждённой записи
	// Третья попытка переноса отменяет запись вместо переноса
	MaxReschedules = 2
)

// Business validation constants
const (
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxNameLength               = 255
	MaxReasonLength             = 500
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Границы суток для частичных дней многодневных блокировок
const (
	StartOfDay = types.TimeString("00:00:00")
	EndOfDay   = types.TimeString("23:59:59")
)

// ActiveStatuses статусы записей, занимающих слот
// Используются при проверке конфликтов и подсчёте занятости
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы записей, освободивших слот
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}
