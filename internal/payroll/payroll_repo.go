package payroll

import (
	"context"
	"time"

	"colfdesk/internal/timesheet"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContractTerms is the slice of a contract the estimator needs.
type ContractTerms struct {
	ID                 uuid.UUID
	Status             string
	PayType            string
	WeeklyHours        float64
	HourlyRate         float64
	MonthlySalary      float64
	OvertimeMultiplier float64
}

// DayRecord is one attendance day with its justification total.
type DayRecord struct {
	Date           time.Time
	WorkedMinutes  int
	CoveredMinutes int
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	GetContractTerms(ctx context.Context, contractID string) (*ContractTerms, error)
	// GetWeek returns an all-zero schedule when none has been stored yet.
	GetWeek(ctx context.Context, contractID string) (timesheet.WeekSchedule, error)
	ListDays(ctx context.Context, contractID string, from, to time.Time) ([]DayRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetContractTerms(ctx context.Context, contractID string) (*ContractTerms, error) {
	var terms ContractTerms
	err := r.db.WithContext(ctx).
		Table("contracts").
		Select("id, status, pay_type, weekly_hours, hourly_rate, monthly_salary, overtime_multiplier").
		Where("id = ? AND deleted_at IS NULL", contractID).
		Take(&terms).Error
	if err != nil {
		return nil, err
	}
	return &terms, nil
}

func (r *repository) GetWeek(ctx context.Context, contractID string) (timesheet.WeekSchedule, error) {
	var row struct {
		MonMinutes int
		TueMinutes int
		WedMinutes int
		ThuMinutes int
		FriMinutes int
		SatMinutes int
		SunMinutes int
	}
	err := r.db.WithContext(ctx).
		Table("work_schedules").
		Where("contract_id = ?", contractID).
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return timesheet.WeekSchedule{}, nil
		}
		return timesheet.WeekSchedule{}, err
	}

	return timesheet.WeekSchedule{
		Mon: row.MonMinutes,
		Tue: row.TueMinutes,
		Wed: row.WedMinutes,
		Thu: row.ThuMinutes,
		Fri: row.FriMinutes,
		Sat: row.SatMinutes,
		Sun: row.SunMinutes,
	}, nil
}

func (r *repository) ListDays(ctx context.Context, contractID string, from, to time.Time) ([]DayRecord, error) {
	var rows []DayRecord
	err := r.db.WithContext(ctx).
		Table("attendances a").
		Select("a.date, a.worked_minutes, COALESCE(SUM(j.minutes), 0) AS covered_minutes").
		Joins("LEFT JOIN justifications j ON j.attendance_id = a.id").
		Where("a.contract_id = ? AND a.date >= ? AND a.date < ?", contractID, from, to).
		Group("a.id, a.date, a.worked_minutes").
		Order("a.date ASC").
		Scan(&rows).Error
	return rows, err
}
