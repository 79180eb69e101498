package domain

import "time"

// DateLayout - формат дат во входном CSV
const DateLayout = "2006-01-02"

// OpenEndedToken - значение DateTo для незавершенного назначения
const OpenEndedToken = "NULL"

type Assignment struct {
	EmployeeID int
	ProjectID  int
	DateFrom   time.Time
	DateTo     *time.Time
}

// IsOpenEnded сообщает, что сотрудник все еще работает на проекте
func (a Assignment) IsOpenEnded() bool {
	return a.DateTo == nil
}
