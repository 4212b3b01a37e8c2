package handlers

import (
	"VoltVault/internal/auth"
	"VoltVault/internal/config"
	"VoltVault/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// AccountHandler обрабатывает регистрацию и вход.
type AccountHandler struct {
	AccountService *service.AccountService
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

// NewAccountHandler создаёт хендлер учётных записей.
func NewAccountHandler(accountService *service.AccountService, logger *zap.SugaredLogger, cfg *config.Config) *AccountHandler {
	return &AccountHandler{AccountService: accountService, Logger: logger, Config: cfg}
}

// credentialsRequest — тело register и login.
type credentialsRequest struct {
	Handle string `json:"handle"`
	Secret string `json:"secret"`
}

// loginResponse — ответ успешного входа.
type loginResponse struct {
	Token  string `json:"token"`
	Handle string `json:"handle"`
}

// Register регистрирует новую учётную запись.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Handle == "" || req.Secret == "" {
		writeError(w, http.StatusBadRequest, "handle and secret are required")
		return
	}

	_, err := h.AccountService.Register(r.Context(), req.Handle, req.Secret)
	if errors.Is(err, service.ErrHandleTaken) {
		writeError(w, http.StatusBadRequest, "handle already taken")
		return
	}
	if err != nil {
		h.Logger.Errorw("Register: service error", "handle", req.Handle, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{})
}

// Login проверяет учётные данные и выдаёт сессионный токен.
// Неизвестный handle и неверный секрет отдают один и тот же ответ,
// чтобы по нему нельзя было перебирать занятые handle.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	account, err := h.AccountService.Login(r.Context(), req.Handle, req.Secret)
	if errors.Is(err, service.ErrAccountNotFound) || errors.Is(err, service.ErrWrongSecret) {
		// различаем причины только в логе
		h.Logger.Infow("Login: rejected", "handle", req.Handle, "reason", err)
		writeError(w, http.StatusBadRequest, "invalid credentials")
		return
	}
	if err != nil {
		h.Logger.Errorw("Login: service error", "handle", req.Handle, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := auth.BuildToken(account.ID, h.Config.AuthSecret)
	if err != nil {
		h.Logger.Errorw("Login: token build failed", "handle", req.Handle, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Handle: account.Handle})
}
