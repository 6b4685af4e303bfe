package contract

type CreateContractRequest struct {
	EmployerID   string `json:"employer_id" binding:"required,uuid"`
	WorkerID     string `json:"worker_id" binding:"required,uuid"`
	ContractType string `json:"contract_type" binding:"required,oneof=COLF BADANTE_CONVIVENTE BADANTE_NON_CONVIVENTE"`
	Level        string `json:"level" binding:"required,min=1"`
	Convivente   bool   `json:"convivente"`
	Thirteenth   *bool  `json:"thirteenth"`

	StartDate       string  `json:"start_date" binding:"required"`
	EndDate         *string `json:"end_date"`
	ProbationMonths *int    `json:"probation_months" binding:"omitempty,min=0"`

	PayType                string   `json:"pay_type" binding:"required,oneof=HOURLY MONTHLY"`
	WeeklyHours            float64  `json:"weekly_hours" binding:"min=0"`
	HourlyRate             float64  `json:"hourly_rate" binding:"min=0"`
	MonthlySalary          float64  `json:"monthly_salary" binding:"min=0"`
	BaseSalary             float64  `json:"base_salary" binding:"min=0"`
	OvertimeMultiplier     *float64 `json:"overtime_multiplier" binding:"omitempty,min=1"`
	Superminimo            *float64 `json:"superminimo" binding:"omitempty,min=0"`
	FoodAllowance          *float64 `json:"food_allowance" binding:"omitempty,min=0"`
	AccommodationAllowance *float64 `json:"accommodation_allowance" binding:"omitempty,min=0"`

	Notes *string `json:"notes"`
}

// UpdateContractRequest edits contract terms. Status is deliberately absent:
// lifecycle moves only through the finalize/close/reopen endpoints.
type UpdateContractRequest struct {
	EmployerID   string `json:"employer_id" binding:"required,uuid"`
	WorkerID     string `json:"worker_id" binding:"required,uuid"`
	ContractType string `json:"contract_type" binding:"required,oneof=COLF BADANTE_CONVIVENTE BADANTE_NON_CONVIVENTE"`
	Level        string `json:"level" binding:"required,min=1"`
	Convivente   bool   `json:"convivente"`
	Thirteenth   *bool  `json:"thirteenth"`

	StartDate       string  `json:"start_date" binding:"required"`
	EndDate         *string `json:"end_date"`
	ProbationMonths *int    `json:"probation_months" binding:"omitempty,min=0"`

	PayType                string   `json:"pay_type" binding:"required,oneof=HOURLY MONTHLY"`
	WeeklyHours            float64  `json:"weekly_hours" binding:"min=0"`
	HourlyRate             float64  `json:"hourly_rate" binding:"min=0"`
	MonthlySalary          float64  `json:"monthly_salary" binding:"min=0"`
	BaseSalary             float64  `json:"base_salary" binding:"min=0"`
	OvertimeMultiplier     *float64 `json:"overtime_multiplier" binding:"omitempty,min=1"`
	Superminimo            *float64 `json:"superminimo" binding:"omitempty,min=0"`
	FoodAllowance          *float64 `json:"food_allowance" binding:"omitempty,min=0"`
	AccommodationAllowance *float64 `json:"accommodation_allowance" binding:"omitempty,min=0"`

	Notes *string `json:"notes"`
}

type ListContractsFilterRequest struct {
	Status     string `form:"status" binding:"omitempty,oneof=DRAFT ACTIVE CLOSED"`
	EmployerID string `form:"employer_id" binding:"omitempty,uuid"`
	WorkerID   string `form:"worker_id" binding:"omitempty,uuid"`
}

type ContractResponse struct {
	ID           string `json:"id"`
	EmployerID   string `json:"employer_id"`
	WorkerID     string `json:"worker_id"`
	EmployerName string `json:"employer_name,omitempty"`
	WorkerName   string `json:"worker_name,omitempty"`

	Status       string `json:"status"`
	ContractType string `json:"contract_type"`
	Level        string `json:"level"`
	Convivente   bool   `json:"convivente"`
	Thirteenth   bool   `json:"thirteenth"`

	StartDate       string  `json:"start_date"`
	EndDate         *string `json:"end_date,omitempty"`
	ProbationMonths *int    `json:"probation_months,omitempty"`

	PayType                string   `json:"pay_type"`
	WeeklyHours            float64  `json:"weekly_hours"`
	HourlyRate             float64  `json:"hourly_rate"`
	MonthlySalary          float64  `json:"monthly_salary"`
	BaseSalary             float64  `json:"base_salary"`
	OvertimeMultiplier     float64  `json:"overtime_multiplier"`
	Superminimo            *float64 `json:"superminimo,omitempty"`
	FoodAllowance          *float64 `json:"food_allowance,omitempty"`
	AccommodationAllowance *float64 `json:"accommodation_allowance,omitempty"`

	Notes *string `json:"notes,omitempty"`
}
