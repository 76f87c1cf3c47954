package categories

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

// MockService реализует интерфейс categories.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Categories(ctx context.Context) ([]*models.TemplateCategory, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*models.TemplateCategory), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCategoriesHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение категорий",
			setupMock: func(m *MockService) {
				cats := []*models.TemplateCategory{
					{ID: 1, Name: "Договоры", Slug: "contracts", SortOrder: 1},
					{ID: 2, Name: "Счета", Slug: "invoices", SortOrder: 2},
				}
				m.On("Categories", mock.Anything).Return(cats, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":2`,
		},
		{
			name: "ошибка сервиса",
			setupMock: func(m *MockService) {
				m.On("Categories", mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not list categories"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/categories", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
