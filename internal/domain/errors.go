package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrInvalidCSV - файл не удалось разобрать
	ErrInvalidCSV = &DomainError{
		Code:    "INVALID_CSV",
		Message: "invalid csv input",
	}

	// ErrUnpairedAssignments - на общем проекте у пары не ровно две записи
	ErrUnpairedAssignments = &DomainError{
		Code:    "UNPAIRED_ASSIGNMENTS",
		Message: "shared project must have exactly one assignment per employee",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrBadRequest - некорректный запрос
	ErrBadRequest = &DomainError{
		Code:    "BAD_REQUEST",
		Message: "bad request",
	}

	// ErrPayloadTooLarge - загруженный файл превышает лимит
	ErrPayloadTooLarge = &DomainError{
		Code:    "PAYLOAD_TOO_LARGE",
		Message: "uploaded file is too large",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewBadRequestError создает ошибку BAD_REQUEST с сообщением
func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    "BAD_REQUEST",
		Message: message,
	}
}

// NewUnpairedAssignmentsError указывает проект, на котором нарушено условие
func NewUnpairedAssignmentsError(projectID, count int) *DomainError {
	return &DomainError{
		Code:    ErrUnpairedAssignments.Code,
		Message: fmt.Sprintf("project %d has %d assignments for the pair, expected 2", projectID, count),
	}
}

// ParseError описывает некорректную строку CSV
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is сопоставляет любую ошибку разбора с ErrInvalidCSV
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidCSV
}
