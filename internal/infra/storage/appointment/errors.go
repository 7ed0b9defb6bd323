package appointment

import "errors"

var (
	// ErrOverlap возвращается, когда вставка отклонена ограничением appointments_no_overlap_booked:
	// интервал пересекается с уже записанным у того же мастера
	ErrOverlap = errors.New("appointment.repository: interval overlaps a booked appointment")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
