package service

import (
	"VoltVault/internal/model"
	"VoltVault/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrRecordNotFound — записи нет или она принадлежит другой учётной записи.
	// Эти случаи неразличимы намеренно: по ответу нельзя прощупать чужие id.
	ErrRecordNotFound = errors.New("record not found")
	// ErrBadKind — тип записи вне закрытого набора login/card/note.
	ErrBadKind = errors.New("unknown record kind")
)

// CreateRecordInput — поля новой записи. Владелец сюда не входит:
// он всегда берётся из аутентифицированной сессии.
type CreateRecordInput struct {
	Kind           model.SecretKind
	Name           string
	SecondaryID    string
	Payload        string
	TransformNonce string
	Favorite       bool
}

// UpdateRecordInput — изменяемые поля. nil означает «не трогать».
type UpdateRecordInput struct {
	Kind           *model.SecretKind
	Name           *string
	SecondaryID    *string
	Payload        *string
	TransformNonce *string
	Favorite       *bool
}

// RecordService инкапсулирует CRUD над записями хранилища.
// Каждая операция ограничена владельцем ещё на уровне запроса к БД.
type RecordService struct {
	repo   repo.RecordRepository
	logger *zap.SugaredLogger
}

func NewRecordService(r repo.RecordRepository, logger *zap.SugaredLogger) *RecordService {
	return &RecordService{repo: r, logger: logger}
}

// List возвращает все записи владельца.
func (s *RecordService) List(ctx context.Context, ownerID int64) ([]model.SecretRecord, error) {
	recs, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return recs, nil
}

// Create заводит новую запись: свежий id, владелец из сессии.
func (s *RecordService) Create(ctx context.Context, ownerID int64, in CreateRecordInput) (*model.SecretRecord, error) {
	if !in.Kind.Valid() {
		return nil, ErrBadKind
	}

	rec := &model.SecretRecord{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		Kind:           in.Kind,
		Name:           in.Name,
		SecondaryID:    in.SecondaryID,
		Payload:        in.Payload,
		TransformNonce: in.TransformNonce,
		Favorite:       in.Favorite,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("creating record: %w", err)
	}
	s.logger.Infow("record created", "owner_id", ownerID, "record_id", rec.ID, "kind", rec.Kind)
	return rec, nil
}

// Update заменяет изменяемые поля записи. Поиск и сама замена
// ограничены владельцем, чужой id выглядит как отсутствующий.
func (s *RecordService) Update(ctx context.Context, ownerID int64, id string, in UpdateRecordInput) (*model.SecretRecord, error) {
	rec, err := s.repo.GetByIDAndOwner(ctx, ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching record: %w", err)
	}

	if in.Kind != nil {
		if !in.Kind.Valid() {
			return nil, ErrBadKind
		}
		rec.Kind = *in.Kind
	}
	if in.Name != nil {
		rec.Name = *in.Name
	}
	if in.SecondaryID != nil {
		rec.SecondaryID = *in.SecondaryID
	}
	if in.Payload != nil {
		rec.Payload = *in.Payload
	}
	if in.TransformNonce != nil {
		rec.TransformNonce = *in.TransformNonce
	}
	if in.Favorite != nil {
		rec.Favorite = *in.Favorite
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving record: %w", err)
	}
	return rec, nil
}

// Delete удаляет запись в пределах владельца.
func (s *RecordService) Delete(ctx context.Context, ownerID int64, id string) error {
	deleted, err := s.repo.DeleteByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	s.logger.Infow("record deleted", "owner_id", ownerID, "record_id", id)
	return nil
}
