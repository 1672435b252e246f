package get_available_slots

import (
	"time"

	"github.com/glossbook/scheduling-service/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)

	// IncludeBlocked добавляет в ответ слоты, перекрытые блокировками -
	// админский календарь показывает их серым вместо того, чтобы прятать
	IncludeBlocked bool
}

// Response модель ответа со списком слотов
type Response struct {
	Date      time.Time         // Дата, на которую запрашивались слоты
	ServiceID int64             // ID услуги
	Slots     []domain.TimeSlot // Слоты в хронологическом порядке
}
