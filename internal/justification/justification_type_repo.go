package justification

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=justification_type_repo.go -destination=mock/justification_type_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]JustificationType, error)
	Seed(ctx context.Context, types []JustificationType) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]JustificationType, error) {
	var rows []JustificationType
	err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Seed(ctx context.Context, types []JustificationType) error {
	rows := make([]JustificationType, len(types))
	for i, t := range types {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		rows[i] = t
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).
		Create(&rows).Error
}
