package create_appointment

import "errors"

var (
	// ErrUnknownKey возвращается, когда ключ не найден в каталоге
	ErrUnknownKey = errors.New("create_appointment: unknown catalog key")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
