package employer

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employer struct {
	ID               uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SubjectType      string         `gorm:"column:subject_type;type:varchar(40);not null"`
	FirstName        string         `gorm:"column:first_name;type:varchar(120);not null"`
	LastName         string         `gorm:"column:last_name;type:varchar(120);not null"`
	TaxCode          string         `gorm:"column:tax_code;type:varchar(16);not null;uniqueIndex:uq_employer_tax_code"`
	Email            string         `gorm:"column:email;type:varchar(255);not null"`
	Phone            string         `gorm:"column:phone;type:varchar(30);not null"`
	WorkAddress      string         `gorm:"column:work_address;type:varchar(255);not null"`
	NotifyPreference string         `gorm:"column:notify_preference;type:varchar(30);not null"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employer) TableName() string {
	return "employers"
}
