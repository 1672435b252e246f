package block_time_range

import (
	"time"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/pkg/types"
)

// Request модель запроса на блокировку диапазона времени
type Request struct {
	StartDate time.Time        // Первый день блокировки
	EndDate   time.Time        // Последний день блокировки (включительно)
	StartTime types.TimeString // Время начала в первый день (игнорируется при AllDay)
	EndTime   types.TimeString // Время конца в последний день (игнорируется при AllDay)
	AllDay    bool             // Блокировать дни целиком
	Reason    *string          // Причина блокировки (опционально)
}

// Response модель ответа со списком созданных однодневных блокировок
type Response struct {
	Ranges []*domain.BlockedRange
}
