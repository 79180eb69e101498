package service

import (
	"time"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

type FinderOptions struct {
	// DistinctEmployees исключает пары записей одного и того же сотрудника.
	// По умолчанию такие пары участвуют в поиске.
	DistinctEmployees bool
}

// FindBestPair ищет две записи одного проекта с самым длинным пересечением.
// При равенстве побеждает первая найденная пара. false - пересечений нет.
func FindBestPair(records []domain.Assignment, today time.Time, opts FinderOptions) (domain.Pair, bool) {
	var best domain.Pair
	found := false

	for _, group := range groupByProject(records) {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if opts.DistinctEmployees && group[i].EmployeeID == group[j].EmployeeID {
					continue
				}

				startDate, endDate := Intersect(group[i], group[j], today)
				if !Overlaps(startDate, endDate) {
					continue
				}

				days := DaysBetween(startDate, endDate)
				if !found || days > best.DaysWorked {
					found = true
					best = domain.Pair{
						FirstEmployeeID:  group[i].EmployeeID,
						SecondEmployeeID: group[j].EmployeeID,
						ProjectID:        group[i].ProjectID,
						DaysWorked:       days,
					}
				}
			}
		}
	}

	return best, found
}

// groupByProject группирует записи по проекту в порядке первого появления
func groupByProject(records []domain.Assignment) [][]domain.Assignment {
	index := make(map[int]int)
	groups := make([][]domain.Assignment, 0)

	for _, record := range records {
		pos, ok := index[record.ProjectID]
		if !ok {
			pos = len(groups)
			index[record.ProjectID] = pos
			groups = append(groups, nil)
		}
		groups[pos] = append(groups[pos], record)
	}

	return groups
}
