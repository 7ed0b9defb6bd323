package schedule

import "errors"

var (
	// ErrNoStaff возвращается, когда в салоне нет ни одного активного мастера
	ErrNoStaff = errors.New("schedule: no active staff configured")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
