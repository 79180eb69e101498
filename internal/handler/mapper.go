package handler

import "github.com/bagdasarian/employees-pair/internal/domain"

func domainEntryToHTTP(entry domain.OverlapEntry) OverlapEntryResponse {
	return OverlapEntryResponse{
		FirstEmployeeID:  entry.FirstEmployeeID,
		SecondEmployeeID: entry.SecondEmployeeID,
		ProjectID:        entry.ProjectID,
		DaysWorked:       entry.DaysWorked,
	}
}

func domainResultToHTTP(result *domain.AnalysisResult) AnalysisResponse {
	entries := make([]OverlapEntryResponse, 0, len(result.Entries))
	for _, entry := range result.Entries {
		entries = append(entries, domainEntryToHTTP(entry))
	}

	return AnalysisResponse{
		SessionID: result.SessionID,
		Entries:   entries,
	}
}
