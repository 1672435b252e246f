package notifier

// EventType тип события жизненного цикла записи
type EventType string

const (
	EventBookingCreated     EventType = "booking_created"
	EventBookingConfirmed   EventType = "booking_confirmed"
	EventBookingRescheduled EventType = "booking_rescheduled"
	EventBookingCancelled   EventType = "booking_cancelled"
)

// BookingEvent полезная нагрузка уведомления для сервиса рассылок
// Сервис рассылок сам решает, какие каналы задействовать (email, SMS)
type BookingEvent struct {
	Type          EventType `json:"type"`
	BookingRef    string    `json:"bookingRef"`
	ServiceName   string    `json:"serviceName"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Date          string    `json:"date"` // YYYY-MM-DD
	StartTime     string    `json:"startTime"`
	Reason        *string   `json:"reason,omitempty"`
}
