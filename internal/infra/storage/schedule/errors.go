package schedule

import "errors"

var (
	// ErrNotFound возвращается, когда активная строка расписания не найдена
	ErrNotFound = errors.New("schedule.repository: working hours not found")

	// ErrNoStaff возвращается, когда нет ни одного активного мастера
	ErrNoStaff = errors.New("schedule.repository: no active staff")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
