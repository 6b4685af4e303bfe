package contract

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft  = "DRAFT"
	StatusActive = "ACTIVE"
	StatusClosed = "CLOSED"
)

const (
	TypeColf                 = "COLF"
	TypeBadanteConvivente    = "BADANTE_CONVIVENTE"
	TypeBadanteNonConvivente = "BADANTE_NON_CONVIVENTE"
)

const (
	PayTypeHourly  = "HOURLY"
	PayTypeMonthly = "MONTHLY"
)

type Contract struct {
	ID         uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployerID uuid.UUID    `gorm:"column:employer_id;type:uuid;not null;index"`
	WorkerID   uuid.UUID    `gorm:"column:worker_id;type:uuid;not null;index"`
	Employer   *EmployerRef `gorm:"foreignKey:EmployerID;references:ID"`
	Worker     *WorkerRef   `gorm:"foreignKey:WorkerID;references:ID"`

	Status       string `gorm:"column:status;type:varchar(20);not null;default:'DRAFT';index"`
	ContractType string `gorm:"column:contract_type;type:varchar(40);not null"`
	Level        string `gorm:"column:level;type:varchar(10);not null"`
	Convivente   bool   `gorm:"column:convivente;not null;default:false"`
	Thirteenth   bool   `gorm:"column:thirteenth;not null;default:true"`

	StartDate       time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate         *time.Time `gorm:"column:end_date;type:date"`
	ProbationMonths *int       `gorm:"column:probation_months"`

	// Pay configuration. weekly_hours drives the overtime threshold; rates
	// and salaries are estimates' inputs, never statutory payroll figures.
	PayType                string   `gorm:"column:pay_type;type:varchar(10);not null"`
	WeeklyHours            float64  `gorm:"column:weekly_hours;type:numeric(5,2);not null;default:0"`
	HourlyRate             float64  `gorm:"column:hourly_rate;type:numeric(8,2);not null;default:0"`
	MonthlySalary          float64  `gorm:"column:monthly_salary;type:numeric(10,2);not null;default:0"`
	BaseSalary             float64  `gorm:"column:base_salary;type:numeric(10,2);not null;default:0"`
	OvertimeMultiplier     float64  `gorm:"column:overtime_multiplier;type:numeric(4,2);not null;default:1.25"`
	Superminimo            *float64 `gorm:"column:superminimo;type:numeric(10,2)"`
	FoodAllowance          *float64 `gorm:"column:food_allowance;type:numeric(10,2)"`
	AccommodationAllowance *float64 `gorm:"column:accommodation_allowance;type:numeric(10,2)"`

	Notes *string `gorm:"column:notes;type:text"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Contract) TableName() string {
	return "contracts"
}

type EmployerRef struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
}

func (EmployerRef) TableName() string {
	return "employers"
}

type WorkerRef struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
}

func (WorkerRef) TableName() string {
	return "workers"
}
