package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Sugar — логгер мидлвари. По умолчанию no-op, в main подменяется реальным.
var Sugar *zap.SugaredLogger = zap.NewNop().Sugar()

// SetLogger передаёт рабочий логгер в мидлварь.
func SetLogger(l *zap.SugaredLogger) {
	Sugar = l
}

type (
	// responseData — сведения об ответе для лога.
	responseData struct {
		status int
		size   int
	}

	// loggingResponseWriter перехватывает статус и размер ответа.
	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// WithLogging логирует каждый запрос: uri, метод, статус, размер, длительность.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rd := &responseData{status: http.StatusOK}
		lw := loggingResponseWriter{ResponseWriter: w, responseData: rd}

		next.ServeHTTP(&lw, r)

		Sugar.Infow("request",
			"uri", r.RequestURI,
			"method", r.Method,
			"status", rd.status,
			"size", rd.size,
			"duration", time.Since(start),
		)
	})
}
