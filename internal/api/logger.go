package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewLoggerMiddleware logs every request with zap.
func NewLoggerMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return middleware.RequestLogger(&structuredLogger{logger})
}

type structuredLogger struct {
	logger *zap.Logger
}

func (l *structuredLogger) NewLogEntry(r *http.Request) middleware.LogEntry {
	fields := []zap.Field{
		zap.String("http_method", r.Method),
		zap.String("http_proto", r.Proto),
		zap.String("remote_addr", r.RemoteAddr),
		zap.String("uri", r.RequestURI),
	}
	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		fields = append(fields, zap.String("req.id", reqID))
	}
	return &structuredLoggerEntry{logger: l.logger.With(fields...)}
}

type structuredLoggerEntry struct {
	logger *zap.Logger
}

func (e *structuredLoggerEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	e.logger.Info("request complete",
		zap.Int("status", status),
		zap.Int("bytes_length", bytes),
		zap.Float64("duration_ms", float64(elapsed.Nanoseconds())/1000000.0),
	)
}

func (e *structuredLoggerEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error("request panic",
		zap.String("panic", fmt.Sprintf("%+v", v)),
		zap.String("stack", string(stack)),
	)
}
