package contract

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ListFilter narrows FindAll; zero values mean "no filter".
type ListFilter struct {
	Status     string
	EmployerID string
	WorkerID   string
}

//go:generate mockgen -source=contract_repo.go -destination=mock/contract_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Contract) error
	FindAll(ctx context.Context, filter ListFilter) ([]Contract, error)
	FindByID(ctx context.Context, id string) (*Contract, error)
	Update(ctx context.Context, c *Contract) error
	Delete(ctx context.Context, id string) error
	EmployerExists(ctx context.Context, employerID string) (bool, error)
	WorkerExists(ctx context.Context, workerID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, c *Contract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Contract, error) {
	q := r.db.WithContext(ctx).
		Preload("Employer").
		Preload("Worker")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.EmployerID != "" {
		q = q.Where("employer_id = ?", filter.EmployerID)
	}
	if filter.WorkerID != "" {
		q = q.Where("worker_id = ?", filter.WorkerID)
	}

	var rows []Contract
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Contract, error) {
	var c Contract
	err := r.db.WithContext(ctx).
		Preload("Employer").
		Preload("Worker").
		Where("id = ?", id).
		First(&c).Error
	return &c, err
}

func (r *repository) Update(ctx context.Context, c *Contract) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Contract{}).Error
}

func (r *repository) EmployerExists(ctx context.Context, employerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&EmployerRef{}).
		Where("id = ? AND deleted_at IS NULL", employerID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) WorkerExists(ctx context.Context, workerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&WorkerRef{}).
		Where("id = ? AND deleted_at IS NULL", workerID).
		Count(&count).Error
	return count > 0, err
}
