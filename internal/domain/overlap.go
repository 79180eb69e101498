package domain

type OverlapEntry struct {
	FirstEmployeeID  int
	SecondEmployeeID int
	ProjectID        int
	DaysWorked       int
}

// Pair - пара сотрудников с самым длинным совместным периодом на одном проекте
type Pair struct {
	FirstEmployeeID  int
	SecondEmployeeID int
	ProjectID        int
	DaysWorked       int
}

// IsSelfPair - обе записи пары принадлежат одному сотруднику
func (p Pair) IsSelfPair() bool {
	return p.FirstEmployeeID == p.SecondEmployeeID
}

// AnalysisResult - результат расчета, сохраненный за сессией
type AnalysisResult struct {
	SessionID string
	Entries   []OverlapEntry
}
