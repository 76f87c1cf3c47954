package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/template-hub/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) TemplatesByCategory(ctx context.Context, categoryID, limit, offset int) ([]*models.Template, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	if res := args.Get(0); res != nil {
		return res.([]*models.Template), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListTemplatesHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение шаблонов категории",
			url:  "/templates?category_id=2",
			setupMock: func(m *MockService) {
				templates := []*models.Template{
					{ID: 1, CategoryID: 2, Title: "Договор аренды"},
					{ID: 2, CategoryID: 2, Title: "Договор подряда"},
				}
				m.On("TemplatesByCategory", mock.Anything, 2, 0, 0).Return(templates, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":2`,
		},
		{
			name: "передается пагинация",
			url:  "/templates?category_id=2&limit=5&offset=10",
			setupMock: func(m *MockService) {
				m.On("TemplatesByCategory", mock.Anything, 2, 5, 10).
					Return([]*models.Template{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":0`,
		},
		{
			name:           "отсутствует category_id",
			url:            "/templates",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode category_id from query"`,
		},
		{
			name:           "некорректный limit",
			url:            "/templates?category_id=2&limit=abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode pagination params"`,
		},
		{
			name: "ошибка сервиса",
			url:  "/templates?category_id=2",
			setupMock: func(m *MockService) {
				m.On("TemplatesByCategory", mock.Anything, 2, 0, 0).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not list templates"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
