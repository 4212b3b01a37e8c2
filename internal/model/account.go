package model

import "time"

// Account — серверная модель учётной записи.
// Handle уникален и не меняется после регистрации; PasswordHash хранит
// bcrypt-дайджест (соль внутри), исходный секрет нигде не сохраняется.
type Account struct {
	ID           int64  `gorm:"primaryKey"`
	Handle       string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
