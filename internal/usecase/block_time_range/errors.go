package block_time_range

import "errors"

var (
	// ErrInvalidDateRange возвращается, когда конечная дата раньше начальной
	ErrInvalidDateRange = errors.New("block_time_range: invalid date range")

	// ErrInvalidTimes возвращается при некорректных границах времени блокировки
	ErrInvalidTimes = errors.New("block_time_range: invalid block times")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("block_time_range: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_time_range: internal error")
)
