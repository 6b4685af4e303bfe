package schedule

type UpdateScheduleRequest struct {
	MonMinutes int `json:"mon_minutes" binding:"min=0,max=1440"`
	TueMinutes int `json:"tue_minutes" binding:"min=0,max=1440"`
	WedMinutes int `json:"wed_minutes" binding:"min=0,max=1440"`
	ThuMinutes int `json:"thu_minutes" binding:"min=0,max=1440"`
	FriMinutes int `json:"fri_minutes" binding:"min=0,max=1440"`
	SatMinutes int `json:"sat_minutes" binding:"min=0,max=1440"`
	SunMinutes int `json:"sun_minutes" binding:"min=0,max=1440"`
}

type ScheduleResponse struct {
	ContractID string `json:"contract_id"`
	MonMinutes int    `json:"mon_minutes"`
	TueMinutes int    `json:"tue_minutes"`
	WedMinutes int    `json:"wed_minutes"`
	ThuMinutes int    `json:"thu_minutes"`
	FriMinutes int    `json:"fri_minutes"`
	SatMinutes int    `json:"sat_minutes"`
	SunMinutes int    `json:"sun_minutes"`
}
