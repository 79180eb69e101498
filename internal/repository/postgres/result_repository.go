package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

// DBExecutor - общий интерфейс для *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// entryRow - представление записи результата в колонке JSONB
type entryRow struct {
	FirstEmployeeID  int `json:"first_employee_id"`
	SecondEmployeeID int `json:"second_employee_id"`
	ProjectID        int `json:"project_id"`
	DaysWorked       int `json:"days_worked"`
}

type resultRepository struct {
	executor DBExecutor
}

func NewResultRepository(db *sql.DB) *resultRepository {
	return &resultRepository{executor: db}
}

func (r *resultRepository) Save(ctx context.Context, sessionID string, entries []domain.OverlapEntry, expiresAt time.Time) error {
	payload, err := encodeEntries(entries)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO overlap_results (session_id, entries, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id) DO UPDATE
		SET entries = EXCLUDED.entries, created_at = EXCLUDED.created_at, expires_at = EXCLUDED.expires_at
	`

	_, err = r.executor.ExecContext(ctx, query, sessionID, string(payload), time.Now(), expiresAt)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

func (r *resultRepository) GetBySessionID(ctx context.Context, sessionID string, now time.Time) ([]domain.OverlapEntry, error) {
	query := `
		SELECT entries
		FROM overlap_results
		WHERE session_id = $1 AND expires_at > $2
	`

	var payload []byte
	err := r.executor.QueryRowContext(ctx, query, sessionID, now).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("result for session " + sessionID)
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	return decodeEntries(payload)
}

func (r *resultRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM overlap_results WHERE expires_at <= $1`

	result, err := r.executor.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired results: %w", err)
	}

	return result.RowsAffected()
}

func encodeEntries(entries []domain.OverlapEntry) ([]byte, error) {
	rows := make([]entryRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, entryRow{
			FirstEmployeeID:  entry.FirstEmployeeID,
			SecondEmployeeID: entry.SecondEmployeeID,
			ProjectID:        entry.ProjectID,
			DaysWorked:       entry.DaysWorked,
		})
	}
	return json.Marshal(rows)
}

func decodeEntries(payload []byte) ([]domain.OverlapEntry, error) {
	var rows []entryRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode stored result: %w", err)
	}

	entries := make([]domain.OverlapEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.OverlapEntry{
			FirstEmployeeID:  row.FirstEmployeeID,
			SecondEmployeeID: row.SecondEmployeeID,
			ProjectID:        row.ProjectID,
			DaysWorked:       row.DaysWorked,
		})
	}
	return entries, nil
}
