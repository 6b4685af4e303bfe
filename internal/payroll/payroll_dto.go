package payroll

type MonthlyEstimateFilterRequest struct {
	Month string `form:"month" binding:"required"`
}

type TotalsResponse struct {
	WorkedMinutes   int     `json:"worked_minutes"`
	PlannedMinutes  int     `json:"planned_minutes"`
	OrdinaryMinutes int     `json:"ordinary_minutes"`
	OvertimeMinutes int     `json:"overtime_minutes"`
	CoveredMinutes  int     `json:"covered_minutes"`
	PlannedHours    float64 `json:"planned_hours"`
	BeyondThreshold bool    `json:"beyond_threshold"`
}

type EstimateResponse struct {
	OrdinaryHours    float64 `json:"ordinary_hours"`
	OvertimeHours    float64 `json:"overtime_hours"`
	HourlyEquivalent float64 `json:"hourly_equivalent"`
	EstimatedGross   float64 `json:"estimated_gross"`
	OvertimeUnpriced bool    `json:"overtime_unpriced"`
}

type MonthlyEstimateResponse struct {
	ContractID string           `json:"contract_id"`
	Month      string           `json:"month"`
	PayType    string           `json:"pay_type"`
	Totals     TotalsResponse   `json:"totals"`
	Estimate   EstimateResponse `json:"estimate"`
}
