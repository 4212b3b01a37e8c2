package model

// SecretRecord — проводное представление записи, как её отдаёт сервер.
// Поле ObscuredPayload содержит уже преобразованные байты.
type SecretRecord struct {
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

// LogicalRecord — «логическое» представление для пользователя CLI:
// поле Secret уже в открытом виде. За пределы фасада в таком виде
// запись не уходит.
type LogicalRecord struct {
	ID          string
	Kind        string
	Name        string
	SecondaryID string
	Secret      string
	Favorite    bool
}
