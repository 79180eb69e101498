package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

const assignmentFields = 4

var errFieldCount = errors.New("expected 4 comma-separated fields")

// ParseAssignments читает CSV вида EmpID,ProjectID,DateFrom,DateTo|NULL.
// Пустые строки пропускаются, первая же некорректная строка прерывает разбор.
func ParseAssignments(r io.Reader) ([]domain.Assignment, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	assignments := make([]domain.Assignment, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &domain.ParseError{Line: csvErr.Line, Err: csvErr.Err}
			}
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if line == 1 {
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
		}
		if isBlankRecord(record) {
			continue
		}

		assignment, err := decodeAssignment(record)
		if err != nil {
			var parseErr *domain.ParseError
			if errors.As(err, &parseErr) {
				parseErr.Line = line
			}
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, nil
}

// decodeAssignment превращает поля строки в типизированную запись
func decodeAssignment(fields []string) (domain.Assignment, error) {
	if len(fields) != assignmentFields {
		return domain.Assignment{}, &domain.ParseError{Err: errFieldCount}
	}

	employeeID, err := parseID("employee id", fields[0])
	if err != nil {
		return domain.Assignment{}, err
	}

	projectID, err := parseID("project id", fields[1])
	if err != nil {
		return domain.Assignment{}, err
	}

	dateFrom, err := parseDate("date from", fields[2])
	if err != nil {
		return domain.Assignment{}, err
	}

	var dateTo *time.Time
	if value := strings.TrimSpace(fields[3]); value != domain.OpenEndedToken {
		parsed, err := parseDate("date to", value)
		if err != nil {
			return domain.Assignment{}, err
		}
		dateTo = &parsed
	}

	return domain.Assignment{
		EmployeeID: employeeID,
		ProjectID:  projectID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	}, nil
}

func parseID(field, raw string) (int, error) {
	value := strings.TrimSpace(raw)
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, &domain.ParseError{Field: field, Value: value, Err: errors.Unwrap(err)}
	}
	return id, nil
}

func parseDate(field, raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	date, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, &domain.ParseError{Field: field, Value: value, Err: errors.New("expected YYYY-MM-DD")}
	}
	return date, nil
}

func isBlankRecord(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}
