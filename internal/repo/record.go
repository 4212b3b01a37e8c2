package repo

import (
	"VoltVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// RecordRepository определяет контракт доступа к записям хранилища.
// Все выборки и мутации выполняются одним запросом, уже ограниченным
// владельцем: непривязанного к owner поиска по id здесь нет вовсе.
type RecordRepository interface {
	// ListByOwner возвращает все записи владельца по возрастанию created_at.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.SecretRecord, error)

	// Create вставляет новую запись.
	Create(ctx context.Context, rec *model.SecretRecord) error

	// GetByIDAndOwner ищет запись по id в пределах владельца.
	// Чужая или несуществующая запись — одинаково gorm.ErrRecordNotFound.
	GetByIDAndOwner(ctx context.Context, ownerID int64, id string) (*model.SecretRecord, error)

	// Save сохраняет изменённую запись целиком.
	Save(ctx context.Context, rec *model.SecretRecord) error

	// DeleteByIDAndOwner удаляет запись по id в пределах владельца.
	// Возвращает false, если под этим владельцем такой записи нет.
	DeleteByIDAndOwner(ctx context.Context, ownerID int64, id string) (bool, error)
}

type recordRepo struct {
	db *gorm.DB
}

// NewRecordRepository создаёт реализацию репозитория записей.
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.SecretRecord, error) {
	var recs []model.SecretRecord
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recordRepo) Create(ctx context.Context, rec *model.SecretRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordRepo) GetByIDAndOwner(ctx context.Context, ownerID int64, id string) (*model.SecretRecord, error) {
	var rec model.SecretRecord
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recordRepo) Save(ctx context.Context, rec *model.SecretRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recordRepo) DeleteByIDAndOwner(ctx context.Context, ownerID int64, id string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.SecretRecord{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
