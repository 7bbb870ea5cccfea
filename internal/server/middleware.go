package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/genie/internal/shared"
	"github.com/rs/cors"
)

const (
	requestIDHeader      = "X-Request-ID"
	requestHeadersHeader = "Access-Control-Request-Headers"
)

type ctxKey int

const requestIDKey ctxKey = iota

// RequestIDFromContext returns the request ID assigned by [RequestID], if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestID assigns each request an ID, reusing the caller's X-Request-ID when present,
// and echoes it in the response headers.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = shared.GenerateID()
			}
			w.Header().Set(requestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
		})
	}
}

// CORS permits cross-origin access to every route and answers preflight requests.
func CORS(cfg shared.CORSConfig) Middleware {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: cfg.AllowedHeaders,
		ExposedHeaders: []string{requestIDHeader},
	}).Handler

	return func(next http.Handler) http.Handler {
		wrapped := handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// rs/cors matches requested header names case-sensitively against a lowercased set
			if v := r.Header.Values(requestHeadersHeader); len(v) > 0 {
				lowered := make([]string, len(v))
				for i, h := range v {
					lowered[i] = strings.ToLower(h)
				}
				r.Header[requestHeadersHeader] = lowered
			}
			wrapped.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(p []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(p)
	s.bytes += n
	return n, err
}

// Logger logs one entry per request with its outcome.
func Logger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			kv := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.bytes,
				"duration", time.Since(start),
				"request_id", RequestIDFromContext(r.Context()),
			}

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("request", kv...)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("request", kv...)
			default:
				logger.Info("request", kv...)
			}
		})
	}
}

// Recover converts a panicking handler into a 500 JSON error.
func Recover(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					if v == http.ErrAbortHandler {
						panic(v)
					}
					logger.Error("handler panic", "panic", v, "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()))
					writeError(w, http.StatusInternalServerError, msgInternal, nil)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
