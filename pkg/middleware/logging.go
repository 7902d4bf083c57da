package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/centralia/sales-api/pkg/apiErrors"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/centralia/sales-api/pkg/metrics"
)

const (
	requestInfoKey contextKey = "request_info"

	slowRequestThreshold = 500 * time.Millisecond
	unmatchedRoute       = "desconhecida"
)

// RequestInfo acumula o que as camadas internas descobrem sobre a requisição:
// a rota casada pelo router e a conta autenticada. O LoggingMiddleware cria o
// valor e o lê depois que a resposta foi escrita.
type RequestInfo struct {
	Route   string
	OwnerID int
	RoleID  int
}

// WithRequestInfo coloca um RequestInfo vazio no contexto
func WithRequestInfo(ctx context.Context) (context.Context, *RequestInfo) {
	info := &RequestInfo{}
	return context.WithValue(ctx, requestInfoKey, info), info
}

// RequestInfoFromContext devolve o RequestInfo da requisição, ou nil fora do LoggingMiddleware
func RequestInfoFromContext(ctx context.Context) *RequestInfo {
	info, _ := ctx.Value(requestInfoKey).(*RequestInfo)
	return info
}

// SetRoute registra o padrão de rota casado, ex.: /v1/leads/:id/stage
func SetRoute(ctx context.Context, route string) {
	if info := RequestInfoFromContext(ctx); info != nil {
		info.Route = route
	}
}

func (i *RequestInfo) route() string {
	if i.Route == "" {
		return unmatchedRoute
	}
	return i.Route
}

// LoggingMiddleware registra cada requisição com a rota, a conta e a duração,
// e alimenta o histograma de latência por rota.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, _ := log.WithCorrelationID(r.Context())
			ctx, info := WithRequestInfo(ctx)
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			metrics.HTTPRequestDuration.
				WithLabelValues(r.Method, info.route(), strconv.Itoa(lrw.statusCode)).
				Observe(elapsed.Seconds())

			fields := log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       info.route(),
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			}
			if info.OwnerID != 0 {
				fields["owner_id"] = info.OwnerID
				fields["user_role_id"] = info.RoleID
			}
			if !log.IsDevelopment() {
				fields["remote_addr"] = r.RemoteAddr
				fields["user_agent"] = r.UserAgent()
			}

			logger := log.ForContext(ctx).WithFields(fields)
			msg := fmt.Sprintf("%s %s concluída em %s", r.Method, info.route(), formatDuration(elapsed))
			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", elapsed)
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if !lrw.wroteHeader {
		lrw.statusCode = code
		lrw.wroteHeader = true
	}
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	lrw.wroteHeader = true
	return lrw.ResponseWriter.Write(b)
}

// LogPanicMiddleware recupera panics dos handlers e responde SRV_001 em JSON
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				fields := log.Fields{
					"error":  fmt.Sprint(recovered),
					"method": r.Method,
					"path":   r.URL.Path,
				}
				if info := RequestInfoFromContext(r.Context()); info != nil && info.OwnerID != 0 {
					fields["owner_id"] = info.OwnerID
				}

				log.ForContext(r.Context()).
					WithFields(fields).
					WithField("stack_trace", string(stack)).
					Error("Panic ao processar requisição")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
