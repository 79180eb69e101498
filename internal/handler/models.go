package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OverlapEntryResponse struct {
	FirstEmployeeID  int `json:"first_employee_id"`
	SecondEmployeeID int `json:"second_employee_id"`
	ProjectID        int `json:"project_id"`
	DaysWorked       int `json:"days_worked"`
}

type AnalysisResponse struct {
	SessionID string                 `json:"session_id"`
	Entries   []OverlapEntryResponse `json:"entries"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
