package model

import "time"

// SecretKind — закрытый набор типов записей хранилища.
type SecretKind string

const (
	KindLogin SecretKind = "login"
	KindCard  SecretKind = "card"
	KindNote  SecretKind = "note"
)

// Valid сообщает, входит ли значение в допустимый набор типов.
func (k SecretKind) Valid() bool {
	switch k {
	case KindLogin, KindCard, KindNote:
		return true
	}
	return false
}

// SecondaryLabel возвращает смысл поля SecondaryID для данного типа записи.
// Для login это имя пользователя, для card — номер карты, для note поле не используется.
func (k SecretKind) SecondaryLabel() string {
	switch k {
	case KindLogin:
		return "username"
	case KindCard:
		return "card number"
	case KindNote:
		return ""
	}
	return ""
}

// SecretRecord — серверная модель записи хранилища.
// OwnerID проставляется только из аутентифицированной сессии и после
// создания не меняется. Payload хранит уже обфусцированные байты:
// сервер никогда не видит секрет в открытом виде.
type SecretRecord struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	OwnerID int64  `gorm:"not null;index"` // ссылка на accounts.id

	// Связи
	Owner *Account `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Kind        SecretKind `gorm:"not null"`
	Name        string     `gorm:"not null"`
	SecondaryID string

	Payload        string // обфусцированный секрет (base64)
	TransformNonce string // свободная метка клиента, сервером не интерпретируется
	Favorite       bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
