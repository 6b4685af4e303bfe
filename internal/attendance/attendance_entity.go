package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is the single record for one contract on one calendar day.
// The composite unique index enforces at most one row per (contract, date).
type Attendance struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ContractID uuid.UUID `gorm:"column:contract_id;type:uuid;not null;uniqueIndex:uq_attendance_contract_date"`
	Date       time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_contract_date"`

	WorkedMinutes int     `gorm:"column:worked_minutes;not null;default:0"`
	Note          *string `gorm:"column:note;type:varchar(1000)"`

	Justifications []Justification `gorm:"foreignKey:AttendanceID;references:ID"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type Justification struct {
	ID                  uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;not null;index"`
	JustificationTypeID uuid.UUID `gorm:"column:justification_type_id;type:uuid;not null"`

	Minutes int     `gorm:"column:minutes;not null"`
	Note    *string `gorm:"column:note;type:varchar(1000)"`

	Type *JustificationTypeRef `gorm:"foreignKey:JustificationTypeID;references:ID"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Justification) TableName() string {
	return "justifications"
}

type JustificationTypeRef struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code  string    `gorm:"column:code"`
	Label string    `gorm:"column:label"`
}

func (JustificationTypeRef) TableName() string {
	return "justification_types"
}
