package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/centralia/sales-api/pkg/apiErrors"
	"github.com/centralia/sales-api/pkg/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	var seenRoute string
	rt := New(WithRoutes(Route{
		Path:   "/v1/leads/:id/stage",
		Method: http.MethodPut,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenRoute = middleware.RequestInfoFromContext(r.Context()).Route
			w.WriteHeader(http.StatusOK)
		}),
		Middlewares: []func(http.Handler) http.Handler{mark("primeiro"), mark("segundo")},
	}))

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedCode   string
	}{
		{name: "Rota casada", method: http.MethodPut, path: "/v1/leads/abc/stage", expectedStatus: http.StatusOK},
		{name: "Rota inexistente", method: http.MethodGet, path: "/v1/vendas", expectedStatus: http.StatusNotFound, expectedCode: apiErrors.ErrRouteNotFound},
		{name: "Método não aceito", method: http.MethodDelete, path: "/v1/leads/abc/stage", expectedStatus: http.StatusMethodNotAllowed, expectedCode: apiErrors.ErrMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order = nil
			seenRoute = ""

			req := httptest.NewRequest(tt.method, tt.path, nil)
			ctx, _ := middleware.WithRequestInfo(req.Context())
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, req.WithContext(ctx))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode == "" {
				assert.Equal(t, []string{"primeiro", "segundo"}, order)
				assert.Equal(t, "/v1/leads/:id/stage", seenRoute)
				return
			}

			var apiErr apiErrors.APIError
			require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&apiErr))
			assert.Equal(t, tt.expectedCode, apiErr.Code)
			assert.Empty(t, order)
		})
	}
}
