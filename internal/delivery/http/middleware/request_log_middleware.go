package middleware

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"blood-donor-registry/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// statusRecorder captures the status code written by the wrapped handler.
// Once headers are out, status no longer changes.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.status = code
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

type RequestLogMiddleware struct {
	log *logrus.Logger
}

func NewRequestLogMiddleware(log *logrus.Logger) *RequestLogMiddleware {
	return &RequestLogMiddleware{log: log}
}

// Handle assigns a request id, recovers panics and writes one access-log line per request.
func (m *RequestLogMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			entry := m.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"method":      r.Method,
				"path":        r.URL.Path,
				"duration_ms": time.Since(start).Milliseconds(),
			})

			if p := recover(); p != nil {
				entry.WithField("panic", p).Errorf("Recovered from panic: %s", debug.Stack())
				// a partial response cannot be replaced
				if !rec.wroteHeader {
					response.InternalServerError(rec, "")
				}
			}

			entry.WithField("status", rec.status).Info("Request completed")
		}()

		next.ServeHTTP(rec, r.WithContext(ctx))
	})
}

// GetRequestIDFromContext extracts the request id from context
func GetRequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDKey).(string)
	return requestID
}
