package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/internal/domain"
	"github.com/hmax24/beauty-salon/pkg/psqlbuilder"
)

// Repository репозиторий мастеров и их рабочих часов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDefaultStaffID возвращает самого раннего по created_at активного мастера
func (r *Repository) GetDefaultStaffID(ctx context.Context) (uuid.UUID, error) {
	query, args, err := psqlbuilder.Select("id").
		From("staff").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: GetDefaultStaffID - build select query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrNoStaff
		}
		return uuid.Nil, fmt.Errorf("%w: GetDefaultStaffID - scan staff id: %v", ErrScanRow, err)
	}

	return id, nil
}

// GetWorkingHours возвращает активную строку расписания мастера на ISO день недели
func (r *Repository) GetWorkingHours(ctx context.Context, staffID uuid.UUID, weekday int) (*domain.WorkingHours, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"day_of_week",
		"start_time",
		"end_time",
		"slot_minutes",
		"is_active",
	).
		From("working_hours").
		Where(squirrel.Eq{
			"staff_id":    staffID.String(),
			"day_of_week": weekday,
			"is_active":   true,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.WorkingHours
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.StaffID,
		&wh.Weekday,
		&wh.OpenTime,
		&wh.CloseTime,
		&wh.SlotMinutes,
		&wh.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: GetWorkingHours - scan working hours: %v", ErrScanRow, err)
	}

	return &wh, nil
}
