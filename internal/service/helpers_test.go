package service

import (
	"testing"
	"time"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

var fixedToday = date("2024-06-30")

func date(value string) time.Time {
	parsed, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func datePtr(value string) *time.Time {
	parsed := date(value)
	return &parsed
}

// assignment строит запись; to == "" означает открытое назначение
func assignment(t *testing.T, employeeID, projectID int, from, to string) domain.Assignment {
	t.Helper()
	a := domain.Assignment{
		EmployeeID: employeeID,
		ProjectID:  projectID,
		DateFrom:   date(from),
	}
	if to != "" {
		a.DateTo = datePtr(to)
	}
	return a
}
