package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkerRow carries a worker and how many live contracts reference them.
type WorkerRow struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	ContractCount int
}

// ContractStat aggregates one contract's attendance inside the month under
// evaluation.
type ContractStat struct {
	ID             uuid.UUID
	WeeklyHours    float64
	BaseSalary     float64
	AttendanceDays int
	WorkedMinutes  int
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	ListWorkers(ctx context.Context) ([]WorkerRow, error)
	ListContractStats(ctx context.Context, from, to time.Time) ([]ContractStat, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListWorkers(ctx context.Context) ([]WorkerRow, error) {
	var rows []WorkerRow
	err := r.db.WithContext(ctx).
		Table("workers w").
		Select("w.id, w.first_name, w.last_name, COUNT(c.id) AS contract_count").
		Joins("LEFT JOIN contracts c ON c.worker_id = w.id AND c.deleted_at IS NULL").
		Where("w.deleted_at IS NULL").
		Group("w.id, w.first_name, w.last_name").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListContractStats(ctx context.Context, from, to time.Time) ([]ContractStat, error) {
	var rows []ContractStat
	err := r.db.WithContext(ctx).
		Table("contracts c").
		Select(`c.id, c.weekly_hours, c.base_salary,
			COUNT(a.id) AS attendance_days,
			COALESCE(SUM(a.worked_minutes), 0) AS worked_minutes`).
		Joins("LEFT JOIN attendances a ON a.contract_id = c.id AND a.date >= ? AND a.date < ?", from, to).
		Where("c.deleted_at IS NULL").
		Group("c.id, c.weekly_hours, c.base_salary").
		Scan(&rows).Error
	return rows, err
}
