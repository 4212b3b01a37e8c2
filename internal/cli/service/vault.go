package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"VoltVault/internal/cli/api"
	"VoltVault/internal/cli/model"
	"VoltVault/internal/cli/obfuscate"
)

var (
	// ErrNotLoggedIn — сервер не получил токен: нужно выполнить login.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrSessionExpired — токен отвергнут: нужно войти заново.
	ErrSessionExpired = errors.New("session expired, log in again")
	// ErrRecordNotFound — записи нет среди записей текущего пользователя.
	ErrRecordNotFound = errors.New("record not found")
)

// EditInput — изменяемые поля записи. nil означает «не трогать».
type EditInput struct {
	Kind        *string
	Name        *string
	SecondaryID *string
	Secret      *string
	Favorite    *bool
}

// VaultService описывает юзкейс-уровень работы с удалённым хранилищем.
// Наружу отдаются только логические записи с открытым полем Secret.
type VaultService interface {
	// List возвращает все записи текущего пользователя.
	List() ([]model.LogicalRecord, error)

	// Get возвращает запись по id.
	Get(id string) (*model.LogicalRecord, error)

	// Add создаёт запись; секрет обфусцируется до отправки.
	Add(rec model.LogicalRecord) (*model.LogicalRecord, error)

	// Edit заменяет переданные поля записи.
	Edit(id string, in EditInput) (*model.LogicalRecord, error)

	// Delete удаляет запись.
	Delete(id string) error
}

// VaultRemote — фасад над HTTP API сервера. Единственное место,
// где вызываются obfuscate.Obscure и obfuscate.Reveal: открытый секрет
// не попадает ни в один запрос к серверу.
type VaultRemote struct {
	serverURL string
	token     string
}

// NewVaultRemote создаёт фасад для заданного сервера и токена сессии.
func NewVaultRemote(serverURL, token string) *VaultRemote {
	return &VaultRemote{serverURL: strings.TrimRight(serverURL, "/"), token: token}
}

// wirePayload — тело создания записи на проводе.
type wirePayload struct {
	Kind           string `json:"kind"`
	Name           string `json:"name"`
	SecondaryID    string `json:"secondary_identifier"`
	Payload        string `json:"obscured_payload"`
	TransformNonce string `json:"transform_nonce"`
	Favorite       bool   `json:"favorite"`
}

// wireUpdate — частичное тело обновления.
type wireUpdate struct {
	Kind        *string `json:"kind,omitempty"`
	Name        *string `json:"name,omitempty"`
	SecondaryID *string `json:"secondary_identifier,omitempty"`
	Payload     *string `json:"obscured_payload,omitempty"`
	Favorite    *bool   `json:"favorite,omitempty"`
}

func toLogical(rec model.SecretRecord) model.LogicalRecord {
	return model.LogicalRecord{
		ID:          rec.ID,
		Kind:        rec.Kind,
		Name:        rec.Name,
		SecondaryID: rec.SecondaryID,
		Secret:      obfuscate.Reveal(rec.Payload),
		Favorite:    rec.Favorite,
	}
}

// newTransformNonce — свободная метка, сохраняемая рядом с payload.
// Сервером не интерпретируется и преобразование не варьирует.
func newTransformNonce() string {
	return "n-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func (v *VaultRemote) mapStatus(resp *http.Response, body []byte) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrNotLoggedIn
	case http.StatusForbidden:
		return ErrSessionExpired
	case http.StatusNotFound:
		return ErrRecordNotFound
	}
	if msg := api.ErrorMessage(body); msg != "" {
		return fmt.Errorf("server: %s", msg)
	}
	return fmt.Errorf("server status %d", resp.StatusCode)
}

func (v *VaultRemote) List() ([]model.LogicalRecord, error) {
	resp, body, err := api.GetJSON(v.serverURL+"/secrets", v.token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, v.mapStatus(resp, body)
	}

	var recs []model.SecretRecord
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	out := make([]model.LogicalRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toLogical(rec))
	}
	return out, nil
}

func (v *VaultRemote) Get(id string) (*model.LogicalRecord, error) {
	// сервер не даёт точечного чтения, фильтруем список
	list, err := v.List()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrRecordNotFound
}

func (v *VaultRemote) Add(rec model.LogicalRecord) (*model.LogicalRecord, error) {
	payload := wirePayload{
		Kind:           rec.Kind,
		Name:           rec.Name,
		SecondaryID:    rec.SecondaryID,
		Payload:        obfuscate.Obscure(rec.Secret),
		TransformNonce: newTransformNonce(),
		Favorite:       rec.Favorite,
	}
	resp, body, err := api.PostJSON(v.serverURL+"/secrets", payload, v.token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, v.mapStatus(resp, body)
	}

	var created model.SecretRecord
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	logical := toLogical(created)
	return &logical, nil
}

func (v *VaultRemote) Edit(id string, in EditInput) (*model.LogicalRecord, error) {
	upd := wireUpdate{
		Kind:        in.Kind,
		Name:        in.Name,
		SecondaryID: in.SecondaryID,
		Favorite:    in.Favorite,
	}
	if in.Secret != nil {
		obscured := obfuscate.Obscure(*in.Secret)
		upd.Payload = &obscured
	}

	resp, body, err := api.DoJSON(http.MethodPut, v.serverURL+"/secrets/"+id, upd, v.token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, v.mapStatus(resp, body)
	}

	var updated model.SecretRecord
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	logical := toLogical(updated)
	return &logical, nil
}

func (v *VaultRemote) Delete(id string) error {
	resp, body, err := api.DoJSON(http.MethodDelete, v.serverURL+"/secrets/"+id, nil, v.token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return v.mapStatus(resp, body)
	}
	return nil
}

var _ VaultService = (*VaultRemote)(nil)
