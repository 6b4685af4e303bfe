package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindByContractAndDate(ctx context.Context, contractID string, date time.Time) (*Attendance, error)
	ListByContractAndRange(ctx context.Context, contractID string, from, to time.Time) ([]Attendance, error)
	Upsert(ctx context.Context, a *Attendance) error

	ReplaceJustifications(ctx context.Context, attendanceID string, items []Justification) error

	ContractExists(ctx context.Context, contractID string) (bool, error)
	JustificationTypeExists(ctx context.Context, typeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) FindByContractAndDate(ctx context.Context, contractID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Preload("Justifications").
		Preload("Justifications.Type").
		Where("contract_id = ? AND date = ?", contractID, date).
		First(&a).Error
	return &a, err
}

// ListByContractAndRange returns rows with date in [from, to), ascending.
func (r *repository) ListByContractAndRange(ctx context.Context, contractID string, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Preload("Justifications").
		Preload("Justifications.Type").
		Where("contract_id = ? AND date >= ? AND date < ?", contractID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Upsert(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).
		Omit("Justifications").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "contract_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"worked_minutes", "note", "updated_at",
			}),
		}).
		Create(a).Error
}

func (r *repository) ReplaceJustifications(ctx context.Context, attendanceID string, items []Justification) error {
	if err := r.db.WithContext(ctx).
		Where("attendance_id = ?", attendanceID).
		Delete(&Justification{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Type").Create(&items).Error
}

func (r *repository) ContractExists(ctx context.Context, contractID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("contracts").
		Where("id = ? AND deleted_at IS NULL", contractID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) JustificationTypeExists(ctx context.Context, typeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("justification_types").
		Where("id = ?", typeID).
		Count(&count).Error
	return count > 0, err
}
