package notifier

import "errors"

var (
	// ErrInternal возвращается при сетевых и прочих внутренних ошибках клиента
	ErrInternal = errors.New("notifier: internal error")

	// ErrInvalidResponse возвращается при неожиданном ответе сервиса рассылок
	ErrInvalidResponse = errors.New("notifier: invalid response")
)
