package schedule

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByContractID(ctx context.Context, contractID string) (*WorkSchedule, error)
	Upsert(ctx context.Context, s *WorkSchedule) error
	ContractExists(ctx context.Context, contractID string) (bool, error)
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

func (r *repository) FindByContractID(ctx context.Context, contractID string) (*WorkSchedule, error) {
	var s WorkSchedule
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		First(&s).Error
	return &s, err
}

func (r *repository) Upsert(ctx context.Context, s *WorkSchedule) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "contract_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"mon_minutes", "tue_minutes", "wed_minutes", "thu_minutes",
				"fri_minutes", "sat_minutes", "sun_minutes", "updated_at",
			}),
		}).
		Create(s).Error
}

func (r *repository) ContractExists(ctx context.Context, contractID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("contracts").
		Where("id = ? AND deleted_at IS NULL", contractID).
		Count(&count).Error
	return count > 0, err
}
