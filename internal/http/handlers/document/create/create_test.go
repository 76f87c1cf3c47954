package create

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/template-hub/internal/models"
	"github.com/magabrotheeeer/template-hub/internal/storage/repository"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.CreateDocumentRequest) (*models.UserDocument, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*models.UserDocument), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateDocumentHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	validBody := `{"user_id":1,"template_id":7,"title":"Договор аренды","document_data":{"tenant":"Anna"}}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное создание документа",
			body: validBody,
			setupMock: func(m *MockService) {
				templateID := 7
				doc := &models.UserDocument{
					ID:         10,
					UserID:     1,
					TemplateID: &templateID,
					Title:      "Договор аренды",
					Status:     models.DocumentStatusDraft,
				}
				m.On("Create", mock.Anything, mock.Anything).Return(doc, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"draft"`,
		},
		{
			name: "успешное создание документа без шаблона",
			body: `{"user_id":1,"title":"Загруженный файл","document_data":{},"file_type":"pdf"}`,
			setupMock: func(m *MockService) {
				fileType := models.FileTypePDF
				doc := &models.UserDocument{
					ID:       11,
					UserID:   1,
					Title:    "Загруженный файл",
					FileType: &fileType,
					Status:   models.DocumentStatusDraft,
				}
				m.On("Create", mock.Anything, mock.MatchedBy(func(req models.CreateDocumentRequest) bool {
					return req.TemplateID == nil
				})).Return(doc, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"template_id":null`,
		},
		{
			name:           "некорректный JSON",
			body:           `not a json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "отсутствует title",
			body:           `{"user_id":1,"document_data":{}}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Title is a required field`,
		},
		{
			name:           "недопустимый тип файла",
			body:           `{"user_id":1,"title":"Документ","document_data":{},"file_type":"txt"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field FileType must be one of`,
		},
		{
			name: "пользователь не найден",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("user with id 1: %w", repository.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `user with id 1`,
		},
		{
			name: "шаблон не найден",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("template with id 7: %w", repository.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `template with id 7`,
		},
		{
			name: "ошибка сервиса",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not create document"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/documents", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
