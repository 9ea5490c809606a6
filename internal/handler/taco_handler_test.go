package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "tacocat/internal/errors"
	"tacocat/internal/model"
	"tacocat/internal/service"
	"tacocat/internal/validator"
)

type MockTacoService struct {
	mock.Mock
}

func (m *MockTacoService) CreateTaco(ctx context.Context, ownerID uint, in service.TacoInput) (*model.Taco, error) {
	args := m.Called(ctx, ownerID, in)
	taco, _ := args.Get(0).(*model.Taco)
	return taco, args.Error(1)
}

func (m *MockTacoService) ListTacos(ctx context.Context, limit int) ([]model.Taco, error) {
	args := m.Called(ctx, limit)
	tacos, _ := args.Get(0).([]model.Taco)
	return tacos, args.Error(1)
}

func newTacoPost(form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/taco", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ctxKeyUser, &model.User{ID: 7, Email: "ziru@test.com"})
	return c, rec
}

func TestTacoHandler_Create(t *testing.T) {
	tests := []struct {
		name             string
		form             url.Values
		setupMock        func(*MockTacoService)
		expectedLocation string
	}{
		{
			name: "checkbox on",
			form: url.Values{"protein": {"chicken"}, "shell": {"flour"}, "cheese": {"on"}, "extras": {"lime"}},
			setupMock: func(m *MockTacoService) {
				m.On("CreateTaco", mock.Anything, uint(7), service.TacoInput{
					Protein: "chicken", Shell: "flour", Cheese: true, Extras: "lime",
				}).Return(&model.Taco{ID: 1}, nil)
			},
			expectedLocation: "/",
		},
		{
			name: "owner gone",
			form: url.Values{"protein": {"chicken"}, "shell": {"flour"}, "extras": {""}},
			setupMock: func(m *MockTacoService) {
				m.On("CreateTaco", mock.Anything, uint(7), mock.Anything).Return(nil, apperrors.ErrSessionInvalid)
			},
			expectedLocation: "/login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tacoService := new(MockTacoService)
			tt.setupMock(tacoService)
			c, rec := newTacoPost(tt.form)

			require.NoError(t, NewTacoHandler(tacoService).Create(c))
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.expectedLocation, rec.Header().Get(echo.HeaderLocation))
			tacoService.AssertExpectations(t)
		})
	}
}
