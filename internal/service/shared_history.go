package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

// SharedHistory возвращает все пересечения пары на общих проектах,
// отсортированные по DaysWorked по убыванию.
// На каждый общий проект должно приходиться ровно две записи пары.
func SharedHistory(records []domain.Assignment, pair domain.Pair, today time.Time) ([]domain.OverlapEntry, error) {
	firstProjects := projectsOf(records, pair.FirstEmployeeID)
	secondProjects := projectsOf(records, pair.SecondEmployeeID)

	shared := make([]domain.Assignment, 0)
	counts := make(map[int]int)
	for _, record := range records {
		if record.EmployeeID != pair.FirstEmployeeID && record.EmployeeID != pair.SecondEmployeeID {
			continue
		}
		if !firstProjects[record.ProjectID] || !secondProjects[record.ProjectID] {
			continue
		}
		shared = append(shared, record)
		counts[record.ProjectID]++
	}

	sort.SliceStable(shared, func(i, j int) bool {
		return shared[i].ProjectID < shared[j].ProjectID
	})

	entries := make([]domain.OverlapEntry, 0, len(shared)/2)
	for i := 0; i < len(shared); i += 2 {
		projectID := shared[i].ProjectID
		if counts[projectID] != 2 {
			return nil, fmt.Errorf("shared history for employees %d and %d: %w",
				pair.FirstEmployeeID, pair.SecondEmployeeID,
				domain.NewUnpairedAssignmentsError(projectID, counts[projectID]))
		}

		first, second := shared[i], shared[i+1]
		startDate, endDate := Intersect(first, second, today)
		if !Overlaps(startDate, endDate) {
			continue
		}

		entries = append(entries, domain.OverlapEntry{
			FirstEmployeeID:  first.EmployeeID,
			SecondEmployeeID: second.EmployeeID,
			ProjectID:        projectID,
			DaysWorked:       DaysBetween(startDate, endDate),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DaysWorked > entries[j].DaysWorked
	})

	return entries, nil
}

// FindOverlaps - полный расчет: лучшая пара и вся ее общая история.
// Если пересечений нет, возвращается пустой список.
func FindOverlaps(records []domain.Assignment, today time.Time, opts FinderOptions) ([]domain.OverlapEntry, error) {
	pair, found := FindBestPair(records, today, opts)
	if !found {
		return []domain.OverlapEntry{}, nil
	}
	return SharedHistory(records, pair, today)
}

func projectsOf(records []domain.Assignment, employeeID int) map[int]bool {
	projects := make(map[int]bool)
	for _, record := range records {
		if record.EmployeeID == employeeID {
			projects[record.ProjectID] = true
		}
	}
	return projects
}
