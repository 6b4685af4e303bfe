package attendance

// UpsertAttendanceRequest writes one day's worked time. worked_duration
// accepts "HH:MM", "H.MM" or plain hours and wins over worked_minutes when
// both are present.
type UpsertAttendanceRequest struct {
	WorkedMinutes  *int    `json:"worked_minutes" binding:"omitempty,min=0"`
	WorkedDuration *string `json:"worked_duration"`
	Note           *string `json:"note" binding:"omitempty,max=1000"`
}

type JustificationItemRequest struct {
	JustificationTypeID string  `json:"justification_type_id" binding:"required,uuid"`
	Minutes             int     `json:"minutes" binding:"min=0,max=1440"`
	Note                *string `json:"note" binding:"omitempty,max=1000"`
}

// ReplaceJustificationsRequest replaces the full justification set for one
// day. Zero-minute items are dropped.
type ReplaceJustificationsRequest struct {
	Items []JustificationItemRequest `json:"items" binding:"dive"`
}

type ListAttendancesFilterRequest struct {
	Month string `form:"month" binding:"required"`
}

type JustificationItemResponse struct {
	ID                  string  `json:"id"`
	JustificationTypeID string  `json:"justification_type_id"`
	TypeCode            string  `json:"type_code,omitempty"`
	TypeLabel           string  `json:"type_label,omitempty"`
	Minutes             int     `json:"minutes"`
	Note                *string `json:"note,omitempty"`
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	ContractID    string  `json:"contract_id"`
	Date          string  `json:"date"`
	WorkedMinutes int     `json:"worked_minutes"`
	Note          *string `json:"note,omitempty"`

	Justifications []JustificationItemResponse `json:"justifications"`

	PlannedMinutes   int `json:"planned_minutes"`
	MissingMinutes   int `json:"missing_minutes"`
	CoveredMinutes   int `json:"covered_minutes"`
	UncoveredMinutes int `json:"uncovered_minutes"`
}

type DayCoverageResponse struct {
	Date           string `json:"date"`
	CoveredMinutes int    `json:"covered_minutes"`
}
