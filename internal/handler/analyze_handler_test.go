package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

const testSessionID = "5b0c1a9e-7f7a-4a57-9f2e-2d6b0b8f9c11"

type MockOverlapService struct {
	mock.Mock
}

func (m *MockOverlapService) Analyze(ctx context.Context, sessionID string, r io.Reader) (*domain.AnalysisResult, error) {
	body, _ := io.ReadAll(r)
	args := m.Called(ctx, sessionID, string(body))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Error(1)
}

func (m *MockOverlapService) GetResult(ctx context.Context, sessionID string) (*domain.AnalysisResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Error(1)
}

func newUploadRequest(t *testing.T, field, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, "assignments.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func TestHandler_Analyze(t *testing.T) {
	csv := "1,100,2020-01-01,2020-01-10\n2,100,2020-01-05,2020-01-20\n"

	t.Run("успешная загрузка", func(t *testing.T) {
		mockService := new(MockOverlapService)
		h := NewHandler(mockService, 0)

		mockService.On("Analyze", mock.Anything, mock.AnythingOfType("string"), csv).Return(&domain.AnalysisResult{
			SessionID: testSessionID,
			Entries: []domain.OverlapEntry{
				{FirstEmployeeID: 1, SecondEmployeeID: 2, ProjectID: 100, DaysWorked: 5},
			},
		}, nil).Once()

		rec := httptest.NewRecorder()
		h.Analyze(rec, newUploadRequest(t, "file", csv))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp AnalysisResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, testSessionID, resp.SessionID)
		assert.Equal(t, []OverlapEntryResponse{
			{FirstEmployeeID: 1, SecondEmployeeID: 2, ProjectID: 100, DaysWorked: 5},
		}, resp.Entries)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookieName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		mockService.AssertExpectations(t)
	})

	t.Run("существующая сессия из cookie переиспользуется", func(t *testing.T) {
		mockService := new(MockOverlapService)
		h := NewHandler(mockService, 0)

		mockService.On("Analyze", mock.Anything, testSessionID, csv).
			Return(&domain.AnalysisResult{SessionID: testSessionID, Entries: []domain.OverlapEntry{}}, nil).Once()

		req := newUploadRequest(t, "file", csv)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionID})
		rec := httptest.NewRecorder()
		h.Analyze(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"session_id":"`+testSessionID+`","entries":[]}`, rec.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("нет поля file", func(t *testing.T) {
		mockService := new(MockOverlapService)
		h := NewHandler(mockService, 0)

		rec := httptest.NewRecorder()
		h.Analyze(rec, newUploadRequest(t, "other", csv))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "BAD_REQUEST", decodeError(t, rec).Code)
		mockService.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("не multipart запрос", func(t *testing.T) {
		mockService := new(MockOverlapService)
		h := NewHandler(mockService, 0)

		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(csv))
		req.Header.Set("Content-Type", "text/csv")
		rec := httptest.NewRecorder()
		h.Analyze(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("файл больше лимита", func(t *testing.T) {
		mockService := new(MockOverlapService)
		h := NewHandler(mockService, 64)

		rec := httptest.NewRecorder()
		h.Analyze(rec, newUploadRequest(t, "file", strings.Repeat(csv, 20)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "PAYLOAD_TOO_LARGE", decodeError(t, rec).Code)
	})

	t.Run("ошибка разбора CSV", func(t *testing.T) {
		mockService := new(MockOverlapService)
		h := NewHandler(mockService, 0)

		parseErr := &domain.ParseError{Line: 3, Field: "employee id", Value: "abc", Err: errors.New("invalid syntax")}
		mockService.On("Analyze", mock.Anything, mock.Anything, mock.Anything).Return(nil, parseErr).Once()

		rec := httptest.NewRecorder()
		h.Analyze(rec, newUploadRequest(t, "file", "abc,1,2020-01-01,NULL\n"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		detail := decodeError(t, rec)
		assert.Equal(t, "INVALID_CSV", detail.Code)
		assert.Contains(t, detail.Message, "line 3")
	})

	t.Run("нарушение парности записей", func(t *testing.T) {
		mockService := new(MockOverlapService)
		h := NewHandler(mockService, 0)

		mockService.On("Analyze", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.NewUnpairedAssignmentsError(100, 3)).Once()

		rec := httptest.NewRecorder()
		h.Analyze(rec, newUploadRequest(t, "file", csv))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "UNPAIRED_ASSIGNMENTS", decodeError(t, rec).Code)
	})

	t.Run("внутренняя ошибка", func(t *testing.T) {
		mockService := new(MockOverlapService)
		h := NewHandler(mockService, 0)

		mockService.On("Analyze", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused")).Once()

		rec := httptest.NewRecorder()
		h.Analyze(rec, newUploadRequest(t, "file", csv))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		detail := decodeError(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", detail.Code)
		assert.NotContains(t, detail.Message, "connection refused")
	})
}

func TestHandler_GetResult(t *testing.T) {
	stored := &domain.AnalysisResult{
		SessionID: testSessionID,
		Entries: []domain.OverlapEntry{
			{FirstEmployeeID: 1, SecondEmployeeID: 2, ProjectID: 200, DaysWorked: 7},
			{FirstEmployeeID: 1, SecondEmployeeID: 2, ProjectID: 100, DaysWorked: 3},
		},
	}

	t.Run("session id из query", func(t *testing.T) {
		mockService := new(MockOverlapService)
		h := NewHandler(mockService, 0)

		mockService.On("GetResult", mock.Anything, testSessionID).Return(stored, nil).Once()

		rec := httptest.NewRecorder()
		h.GetResult(rec, httptest.NewRequest(http.MethodGet, "/result?session_id="+testSessionID, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp AnalysisResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Entries, 2)
		assert.Equal(t, 7, resp.Entries[0].DaysWorked)
		assert.Equal(t, 3, resp.Entries[1].DaysWorked)
		mockService.AssertExpectations(t)
	})

	t.Run("session id из cookie", func(t *testing.T) {
		mockService := new(MockOverlapService)
		h := NewHandler(mockService, 0)

		mockService.On("GetResult", mock.Anything, testSessionID).Return(stored, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/result", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionID})
		rec := httptest.NewRecorder()
		h.GetResult(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("без session id", func(t *testing.T) {
		mockService := new(MockOverlapService)
		h := NewHandler(mockService, 0)

		rec := httptest.NewRecorder()
		h.GetResult(rec, httptest.NewRequest(http.MethodGet, "/result", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetResult", mock.Anything, mock.Anything)
	})

	t.Run("результат не найден", func(t *testing.T) {
		mockService := new(MockOverlapService)
		h := NewHandler(mockService, 0)

		mockService.On("GetResult", mock.Anything, testSessionID).
			Return(nil, domain.NewNotFoundError("result for session "+testSessionID)).Once()

		rec := httptest.NewRecorder()
		h.GetResult(rec, httptest.NewRequest(http.MethodGet, "/result?session_id="+testSessionID, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
	})
}

func TestOverlapEntryResponse_JSONRoundTrip(t *testing.T) {
	result := &domain.AnalysisResult{
		SessionID: testSessionID,
		Entries: []domain.OverlapEntry{
			{FirstEmployeeID: 143, SecondEmployeeID: 218, ProjectID: 12, DaysWorked: 35},
			{FirstEmployeeID: 218, SecondEmployeeID: 143, ProjectID: 10, DaysWorked: 0},
		},
	}
	want := domainResultToHTTP(result)

	payload, err := json.Marshal(want)
	require.NoError(t, err)

	var decoded AnalysisResponse
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, want, decoded)
	assert.JSONEq(t, `{"session_id":"`+testSessionID+`","entries":[
		{"first_employee_id":143,"second_employee_id":218,"project_id":12,"days_worked":35},
		{"first_employee_id":218,"second_employee_id":143,"project_id":10,"days_worked":0}
	]}`, string(payload))
}
