package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/internal/usecases/authenticating/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler(t *testing.T, expectClaims bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := ClaimsFromContext(r.Context())
		assert.Equal(t, expectClaims, ok)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		header         string
		setup          func(validator *mocks.MockAuthenticator)
		expectClaims   bool
		expectedStatus int
	}{
		{
			name:           "Rota pública não exige token",
			method:         http.MethodPost,
			path:           "/v1/login",
			setup:          func(validator *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Preflight passa sem token",
			method:         http.MethodOptions,
			path:           "/v1/leads",
			setup:          func(validator *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem cabeçalho Authorization",
			method:         http.MethodGet,
			path:           "/v1/leads",
			setup:          func(validator *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Cabeçalho sem Bearer",
			method:         http.MethodGet,
			path:           "/v1/leads",
			header:         "abc.def.ghi",
			setup:          func(validator *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token rejeitado",
			method: http.MethodGet,
			path:   "/v1/leads",
			header: "Bearer expirado",
			setup: func(validator *mocks.MockAuthenticator) {
				validator.EXPECT().ValidateToken("expirado").Return(nil, errors.New("token expirado"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token válido coloca as claims no contexto",
			method: http.MethodGet,
			path:   "/v1/leads",
			header: "Bearer valido",
			setup: func(validator *mocks.MockAuthenticator) {
				validator.EXPECT().ValidateToken("valido").Return(&domain.Claims{UserID: 7, UserRoleID: domain.RoleManager}, nil)
			},
			expectClaims:   true,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := mocks.NewMockAuthenticator(ctrl)
			tt.setup(validator)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(validator)(okHandler(t, tt.expectClaims)).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		middleware     func(http.Handler) http.Handler
		expectedStatus int
	}{
		{
			name:           "Sem claims no contexto",
			middleware:     AllRoles(),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Administrador acessa rota de cron",
			claims:         &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin},
			middleware:     AdminOnly(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Gestor bloqueado em rota de administrador",
			claims:         &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager},
			middleware:     AdminOnly(),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Vendedor bloqueado em rota de gestão",
			claims:         &domain.Claims{UserID: 3, UserRoleID: domain.RoleSeller},
			middleware:     AdminOrManager(),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Vendedor acessa rota comum",
			claims:         &domain.Claims{UserID: 3, UserRoleID: domain.RoleSeller},
			middleware:     AllRoles(),
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler(t, tt.claims != nil)).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		origin         string
		method         string
		expectedOrigin string
		expectedStatus int
	}{
		{
			name:           "Origem permitida recebe cabeçalhos",
			allowed:        []string{"http://localhost:3000"},
			origin:         "http://localhost:3000",
			method:         http.MethodGet,
			expectedOrigin: "http://localhost:3000",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Origem desconhecida segue sem cabeçalhos",
			allowed:        []string{"http://localhost:3000"},
			origin:         "http://evil.com",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Curinga libera qualquer origem",
			allowed:        []string{"*"},
			origin:         "http://painel.centralia.com.br",
			method:         http.MethodGet,
			expectedOrigin: "http://painel.centralia.com.br",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Preflight responde sem chamar o próximo handler",
			allowed:        []string{"http://localhost:5173"},
			origin:         "http://localhost:5173",
			method:         http.MethodOptions,
			expectedOrigin: "http://localhost:5173",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/v1/leads", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.method != http.MethodOptions, called)
		})
	}
}
