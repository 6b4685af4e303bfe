package schedule

import (
	"time"

	"github.com/google/uuid"
)

// WorkSchedule holds the planned minutes per weekday for one contract.
// One row per contract; created lazily with all-zero minutes on first read.
type WorkSchedule struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ContractID uuid.UUID `gorm:"column:contract_id;type:uuid;not null;uniqueIndex:uq_schedule_contract"`

	MonMinutes int `gorm:"column:mon_minutes;not null;default:0"`
	TueMinutes int `gorm:"column:tue_minutes;not null;default:0"`
	WedMinutes int `gorm:"column:wed_minutes;not null;default:0"`
	ThuMinutes int `gorm:"column:thu_minutes;not null;default:0"`
	FriMinutes int `gorm:"column:fri_minutes;not null;default:0"`
	SatMinutes int `gorm:"column:sat_minutes;not null;default:0"`
	SunMinutes int `gorm:"column:sun_minutes;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (WorkSchedule) TableName() string {
	return "work_schedules"
}
