package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/template-hub/internal/models"
	"github.com/magabrotheeeer/template-hub/internal/storage/repository"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	args := m.Called(ctx, id, patch)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUpdateUserHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление имени",
			id:   "1",
			body: `{"name":"Anna K."}`,
			setupMock: func(m *MockService) {
				user := &models.User{ID: 1, Email: "anna@example.com", Name: "Anna K."}
				m.On("Update", mock.Anything, 1, mock.MatchedBy(func(p models.UserPatch) bool {
					return p.Name.Set && p.Name.Value == "Anna K." && !p.Email.Set
				})).Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Anna K."`,
		},
		{
			name: "сброс аватара через null",
			id:   "1",
			body: `{"avatar_url":null}`,
			setupMock: func(m *MockService) {
				user := &models.User{ID: 1, Email: "anna@example.com", Name: "Anna"}
				m.On("Update", mock.Anything, 1, mock.MatchedBy(func(p models.UserPatch) bool {
					return p.AvatarURL.Set && p.AvatarURL.Value == nil
				})).Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:           "некорректный id в URL",
			id:             "abc",
			body:           `{"name":"Anna"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode id from url"`,
		},
		{
			name:           "некорректный JSON",
			id:             "1",
			body:           `not a json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "пустой email отклоняется",
			id:             "1",
			body:           `{"email":""}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name:           "недопустимый тип подписки",
			id:             "1",
			body:           `{"subscription_type":"platinum"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name: "пользователь не найден",
			id:   "42",
			body: `{"name":"Anna"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 42, mock.Anything).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"user not found"`,
		},
		{
			name: "почта уже занята",
			id:   "1",
			body: `{"email":"taken@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 1, mock.Anything).Return(nil, repository.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"email already registered"`,
		},
		{
			name: "ошибка сервиса",
			id:   "1",
			body: `{"name":"Anna"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 1, mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not update user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.id, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
