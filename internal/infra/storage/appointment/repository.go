package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/hmax24/beauty-salon/internal/domain"
	"github.com/hmax24/beauty-salon/pkg/psqlbuilder"
)

const (
	// pgExclusionViolation SQLSTATE 23P01
	pgExclusionViolation = "23P01"

	overlapConstraint = "appointments_no_overlap_booked"
)

// Repository репозиторий записей клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет запись одной командой INSERT ... RETURNING.
// Пересечение с уже записанным интервалом отклоняет сама БД (exclusion constraint),
// поэтому между проверкой и вставкой нет окна для гонки
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"staff_id",
			"date",
			"start_time",
			"end_time",
			"service_id",
			"offer_id",
			"client_name",
			"client_phone",
			"client_comment",
			"status",
		).
		Values(
			a.ID,
			a.StaffID,
			a.Date.Format(domain.DateFormat),
			a.StartTime,
			a.EndTime,
			a.ServiceID,
			a.OfferID,
			a.ClientName,
			a.ClientPhone,
			a.ClientComment,
			string(a.Status),
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		if isOverlapViolation(err) {
			return nil, ErrOverlap
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	a.CreatedAt = createdAt.Time

	return a, nil
}

// ListBookedBlocks возвращает занятые интервалы мастера на дату (status = booked)
func (r *Repository) ListBookedBlocks(ctx context.Context, staffID uuid.UUID, date time.Time) ([]domain.Block, error) {
	query, args, err := psqlbuilder.Select("start_time", "end_time").
		From("appointments").
		Where(squirrel.Eq{
			"staff_id": staffID.String(),
			"date":     date.Format(domain.DateFormat),
			"status":   string(domain.StatusBooked),
		}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedBlocks - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]domain.Block, 0)
	for rows.Next() {
		var b domain.Block
		if err := rows.Scan(&b.Start, &b.End); err != nil {
			return nil, fmt.Errorf("%w: ListBookedBlocks - scan block: %v", ErrScanRow, err)
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookedBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// isOverlapViolation распознаёт нарушение exclusion constraint на пересечение интервалов
func isOverlapViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != pgExclusionViolation {
		return false
	}
	return pqErr.Constraint == "" || pqErr.Constraint == overlapConstraint
}
