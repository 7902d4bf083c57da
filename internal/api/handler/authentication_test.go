package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/centralia/sales-api/internal/api/handler/router"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/internal/usecases/authenticating"
	"github.com/centralia/sales-api/internal/usecases/authenticating/mocks"
	"github.com/centralia/sales-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthenticationHandlers(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setup          func(service *mocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
		validate       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Login devolve o token",
			method: http.MethodPost,
			path:   "/v1/login",
			body:   `{"email":"ana@loja.com","password":"Senha1234"}`,
			setup: func(service *mocks.MockAuthenticator) {
				service.EXPECT().Login(gomock.Any(), "ana@loja.com", "Senha1234").Return("jwt-token", nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, "jwt-token", body["token"])
			},
		},
		{
			name:           "Login com JSON inválido",
			method:         http.MethodPost,
			path:           "/v1/login",
			body:           `{"email":`,
			setup:          func(service *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:   "Senha incorreta leva o id do usuário nos detalhes",
			method: http.MethodPost,
			path:   "/v1/login",
			body:   `{"email":"ana@loja.com","password":"errada"}`,
			setup: func(service *mocks.MockAuthenticator) {
				service.EXPECT().Login(gomock.Any(), "ana@loja.com", "errada").Return("",
					authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 9, "Senha incorreta"))
			},
			expectedStatus: http.StatusUnauthorized,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, apiErr.Code)
				assert.Equal(t, map[string]any{"user_id": float64(9)}, apiErr.Details)
			},
		},
		{
			name:   "Erro desconhecido vira erro interno",
			method: http.MethodPost,
			path:   "/v1/login",
			body:   `{"email":"ana@loja.com","password":"Senha1234"}`,
			setup: func(service *mocks.MockAuthenticator) {
				service.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("panic no driver"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
		{
			name:   "Cadastro cria gestor",
			method: http.MethodPost,
			path:   "/v1/register",
			body:   `{"name":"Ana","lastname":"Souza","email":"ana@loja.com","password":"Senha1234"}`,
			setup: func(service *mocks.MockAuthenticator) {
				service.EXPECT().Register(gomock.Any(), &domain.RegisterRequest{
					Name: "Ana", Lastname: "Souza", Email: "ana@loja.com", Password: "Senha1234",
				}).Return(&domain.User{ID: 11, Email: "ana@loja.com", RoleID: domain.RoleManager, Active: true}, nil)
			},
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var user domain.User
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
				assert.Equal(t, 11, user.ID)
			},
		},
		{
			name:   "Cadastro com email repetido",
			method: http.MethodPost,
			path:   "/v1/register",
			body:   `{"name":"Ana","lastname":"Souza","email":"ana@loja.com","password":"Senha1234"}`,
			setup: func(service *mocks.MockAuthenticator) {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil,
					authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrUserAlreadyExists,
		},
		{
			name:   "Perfil do usuário logado",
			method: http.MethodGet,
			path:   "/v1/me",
			setup: func(service *mocks.MockAuthenticator) {
				service.EXPECT().GetUserProfile(gomock.Any(), testOwner).Return(&domain.User{ID: testOwner, Name: "Ana"}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var user domain.User
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
				assert.Equal(t, "Ana", user.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			handler := withClaims(router.New(router.WithRoutes(Authentication(service)...)), domain.RoleManager)
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}
