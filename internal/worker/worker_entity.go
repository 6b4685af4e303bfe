package worker

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Worker struct {
	ID               uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName        string         `gorm:"column:first_name;type:varchar(120);not null"`
	LastName         string         `gorm:"column:last_name;type:varchar(120);not null"`
	TaxCode          string         `gorm:"column:tax_code;type:varchar(16);not null;uniqueIndex:uq_worker_tax_code"`
	BirthDate        time.Time      `gorm:"column:birth_date;type:date;not null"`
	Email            string         `gorm:"column:email;type:varchar(255);not null"`
	Phone            string         `gorm:"column:phone;type:varchar(30);not null"`
	IdentityDocument string         `gorm:"column:identity_document;type:varchar(120);not null"`
	IBAN             *string        `gorm:"column:iban;type:varchar(34)"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Worker) TableName() string {
	return "workers"
}
