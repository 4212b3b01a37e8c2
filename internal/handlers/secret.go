package handlers

import (
	"VoltVault/internal/middleware"
	"VoltVault/internal/model"
	"VoltVault/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SecretHandler обрабатывает CRUD записей хранилища.
// Владелец каждой операции берётся исключительно из контекста запроса,
// проставленного WithAuth; из тела он не читается никогда.
type SecretHandler struct {
	RecordService *service.RecordService
	Logger        *zap.SugaredLogger
}

// NewSecretHandler создаёт хендлер записей.
func NewSecretHandler(recordService *service.RecordService, logger *zap.SugaredLogger) *SecretHandler {
	return &SecretHandler{RecordService: recordService, Logger: logger}
}

// createSecretRequest — тело создания записи.
type createSecretRequest struct {
	Kind           string `json:"kind"`
	Name           string `json:"name"`
	SecondaryID    string `json:"secondary_identifier"`
	Payload        string `json:"obscured_payload"`
	TransformNonce string `json:"transform_nonce"`
	Favorite       bool   `json:"favorite"`
}

// updateSecretRequest — частичное тело обновления. Отсутствующие поля не трогаются.
type updateSecretRequest struct {
	Kind           *string `json:"kind,omitempty"`
	Name           *string `json:"name,omitempty"`
	SecondaryID    *string `json:"secondary_identifier,omitempty"`
	Payload        *string `json:"obscured_payload,omitempty"`
	TransformNonce *string `json:"transform_nonce,omitempty"`
	Favorite       *bool   `json:"favorite,omitempty"`
}

// secretDTO — представление записи в ответах.
type secretDTO struct {
	ID             string `json:"id"`
	OwnerAccountID int64  `json:"owner_account_id"`
	Kind           string `json:"kind"`
	Name           string `json:"name"`
	SecondaryID    string `json:"secondary_identifier"`
	Payload        string `json:"obscured_payload"`
	TransformNonce string `json:"transform_nonce"`
	Favorite       bool   `json:"favorite"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

func toSecretDTO(rec *model.SecretRecord) secretDTO {
	return secretDTO{
		ID:             rec.ID,
		OwnerAccountID: rec.OwnerID,
		Kind:           string(rec.Kind),
		Name:           rec.Name,
		SecondaryID:    rec.SecondaryID,
		Payload:        rec.Payload,
		TransformNonce: rec.TransformNonce,
		Favorite:       rec.Favorite,
		CreatedAt:      rec.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      rec.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ownerID достаёт владельца из контекста. WithAuth стоит на всём сабруте,
// поэтому отсутствие значения — внутренняя ошибка, а не 401.
func (h *SecretHandler) ownerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.GetAccountIDFromContext(r.Context())
	if !ok {
		h.Logger.Errorw("secret handler reached without account in context", "uri", r.RequestURI)
		writeError(w, http.StatusInternalServerError, "internal error")
		return 0, false
	}
	return id, true
}

// List отдаёт все записи владельца.
func (h *SecretHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	recs, err := h.RecordService.List(r.Context(), owner)
	if err != nil {
		h.Logger.Errorw("List: service error", "owner_id", owner, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	dtos := make([]secretDTO, 0, len(recs))
	for i := range recs {
		dtos = append(dtos, toSecretDTO(&recs[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Create заводит новую запись владельца.
func (h *SecretHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	var req createSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	rec, err := h.RecordService.Create(r.Context(), owner, service.CreateRecordInput{
		Kind:           model.SecretKind(req.Kind),
		Name:           req.Name,
		SecondaryID:    req.SecondaryID,
		Payload:        req.Payload,
		TransformNonce: req.TransformNonce,
		Favorite:       req.Favorite,
	})
	if errors.Is(err, service.ErrBadKind) {
		writeError(w, http.StatusBadRequest, "kind must be one of: login, card, note")
		return
	}
	if err != nil {
		h.Logger.Errorw("Create: service error", "owner_id", owner, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toSecretDTO(rec))
}

// Update заменяет изменяемые поля записи владельца.
func (h *SecretHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.ownerID(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var req updateSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "record_id", id, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	in := service.UpdateRecordInput{
		Name:           req.Name,
		SecondaryID:    req.SecondaryID,
		Payload:        req.Payload,
		TransformNonce: req.TransformNonce,
		Favorite:       req.Favorite,
	}
	if req.Kind != nil {
		kind := model.SecretKind(*req.Kind)
		in.Kind = &kind
	}

	rec, err := h.RecordService.Update(r.Context(), owner, id, in)
	if errors.Is(err, service.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	if errors.Is(err, service.ErrBadKind) {
		writeError(w, http.StatusBadRequest, "kind must be one of: login, card, note")
		return
	}
	if err != nil {
		h.Logger.Errorw("Update: service error", "owner_id", owner, "record_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toSecretDTO(rec))
}

// Delete удаляет запись владельца.
func (h *SecretHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.ownerID(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	err := h.RecordService.Delete(r.Context(), owner, id)
	if errors.Is(err, service.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	if err != nil {
		h.Logger.Errorw("Delete: service error", "owner_id", owner, "record_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{})
}
