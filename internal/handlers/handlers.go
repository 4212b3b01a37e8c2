package handlers

import (
	"VoltVault/internal/config"
	"VoltVault/internal/middleware"
	"VoltVault/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	accountService *service.AccountService,
	recordService *service.RecordService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	accountHandler := NewAccountHandler(accountService, logger, config)
	secretHandler := NewSecretHandler(recordService, logger)

	// health
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("VoltVault API is running."))
	})

	// Account routes — без аутентификации
	r.Post("/accounts", accountHandler.Register)
	r.Post("/sessions", accountHandler.Login)

	// Secret routes — только с валидным Bearer-токеном
	r.Route("/secrets", func(r chi.Router) {
		r.Use(middleware.WithAuth(config.AuthSecret))
		r.Get("/", secretHandler.List)
		r.Post("/", secretHandler.Create)
		r.Put("/{id}", secretHandler.Update)
		r.Delete("/{id}", secretHandler.Delete)
	})

	return &Handler{Router: r}
}

// writeJSON пишет произвольный JSON-ответ с заданным статусом.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError пишет тело ошибки единой формы {"error": "<msg>"}.
func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
