package dashboard

type StatsResponse struct {
	TotalEmployees int64           `json:"total_employees"`
	PresentToday   int64           `json:"present_today"`
	AbsentToday    int64           `json:"absent_today"`
	RecentActivity []ActivityEntry `json:"recent_activity"`
}

type ActivityEntry struct {
	EmployeeName string `json:"employee_name"`
	Time         string `json:"time"`
	Status       string `json:"status"`
}
