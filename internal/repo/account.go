package repo

import (
	"VoltVault/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// AccountRepository определяет контракт доступа к учётным записям.
type AccountRepository interface {
	// CreateAccount вставляет новую учётную запись и возвращает её с присвоенным ID.
	CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error)

	// GetAccountByHandle ищет учётную запись по handle.
	// Если записи нет, возвращает (nil, nil) — отсутствие не является ошибкой.
	GetAccountByHandle(ctx context.Context, handle string) (*model.Account, error)
}

type accountRepo struct {
	db *gorm.DB
}

// NewAccountRepository создаёт реализацию репозитория учётных записей.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error) {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (r *accountRepo) GetAccountByHandle(ctx context.Context, handle string) (*model.Account, error) {
	var a model.Account
	err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
