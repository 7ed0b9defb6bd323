package catalog

import "errors"

var (
	// ErrNotFound возвращается, когда ключ не найден ни среди услуг, ни среди офферов
	ErrNotFound = errors.New("catalog: key not found")

	// ErrInvalidDuration возвращается, когда вычисленная длительность не положительна
	ErrInvalidDuration = errors.New("catalog: resolved duration is not positive")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
