package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/internal/usecases/authenticating/mocks"
	"github.com/centralia/sales-api/pkg/apiErrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		setup    func(validator *mocks.MockAuthenticator)
		handler  http.HandlerFunc
		validate func(t *testing.T, rec *httptest.ResponseRecorder, entry *logrus.Entry)
	}{
		{
			name:   "Registra rota e conta autenticada",
			header: "Bearer valido",
			setup: func(validator *mocks.MockAuthenticator) {
				validator.EXPECT().ValidateToken("valido").Return(&domain.Claims{UserID: 7, UserRoleID: domain.RoleManager}, nil)
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				SetRoute(r.Context(), "/v1/leads/:id")
				w.WriteHeader(http.StatusNoContent)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, entry *logrus.Entry) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				assert.Equal(t, logrus.InfoLevel, entry.Level)
				assert.Equal(t, "/v1/leads/:id", entry.Data["route"])
				assert.Equal(t, 7, entry.Data["owner_id"])
				assert.Equal(t, domain.RoleManager, entry.Data["user_role_id"])
				assert.Equal(t, http.StatusNoContent, entry.Data["status_code"])
				assert.NotEmpty(t, entry.Data["correlation_id"])
			},
		},
		{
			name:  "Requisição sem token sai como aviso sem conta",
			setup: func(validator *mocks.MockAuthenticator) {},
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, entry *logrus.Entry) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, logrus.WarnLevel, entry.Level)
				assert.Equal(t, unmatchedRoute, entry.Data["route"])
				assert.NotContains(t, entry.Data, "owner_id")
			},
		},
		{
			name:   "Panic vira SRV_001 e log de erro com a conta",
			header: "Bearer valido",
			setup: func(validator *mocks.MockAuthenticator) {
				validator.EXPECT().ValidateToken("valido").Return(&domain.Claims{UserID: 9, UserRoleID: domain.RoleSeller}, nil)
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				SetRoute(r.Context(), "/v1/pipeline/metrics")
				panic("mapa nil")
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, entry *logrus.Entry) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&apiErr))
				assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)

				assert.Equal(t, logrus.ErrorLevel, entry.Level)
				assert.Equal(t, "/v1/pipeline/metrics", entry.Data["route"])
				assert.Equal(t, 9, entry.Data["owner_id"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "production")
			hook := test.NewGlobal()
			defer hook.Reset()

			ctrl := gomock.NewController(t)
			validator := mocks.NewMockAuthenticator(ctrl)
			tt.setup(validator)

			chain := LoggingMiddleware()(LogPanicMiddleware()(AuthMiddleware(validator)(tt.handler)))

			req := httptest.NewRequest(http.MethodGet, "/v1/leads/abc", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			chain.ServeHTTP(rec, req)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			tt.validate(t, rec, entry)
		})
	}
}
