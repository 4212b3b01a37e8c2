package service

import (
	"VoltVault/internal/model"
	"VoltVault/internal/repo"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// мок для repo.RecordRepository
type mockRecordRepo struct{ mock.Mock }

func (m *mockRecordRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.SecretRecord, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.SecretRecord); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordRepo) Create(ctx context.Context, rec *model.SecretRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockRecordRepo) GetByIDAndOwner(ctx context.Context, ownerID int64, id string) (*model.SecretRecord, error) {
	args := m.Called(ctx, ownerID, id)
	if v, ok := args.Get(0).(*model.SecretRecord); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordRepo) Save(ctx context.Context, rec *model.SecretRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockRecordRepo) DeleteByIDAndOwner(ctx context.Context, ownerID int64, id string) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

var _ repo.RecordRepository = (*mockRecordRepo)(nil)

func newRecordService(m *mockRecordRepo) *RecordService {
	return NewRecordService(m, zap.NewNop().Sugar())
}

func TestRecordService_Create(t *testing.T) {
	ctx := context.Background()
	m := new(mockRecordRepo)
	svc := newRecordService(m)

	t.Run("stamps owner and fresh id", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("Create", mock.Anything, mock.MatchedBy(func(rec *model.SecretRecord) bool {
			_, err := uuid.Parse(rec.ID)
			return err == nil && rec.OwnerID == 42 && rec.Kind == model.KindLogin
		})).Return(nil).Once()

		rec, err := svc.Create(ctx, 42, CreateRecordInput{
			Kind:    model.KindLogin,
			Name:    "Mail",
			Payload: "obscured",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(42), rec.OwnerID)
		assert.NotEmpty(t, rec.ID)
		m.AssertExpectations(t)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		m.ExpectedCalls = nil

		rec, err := svc.Create(ctx, 42, CreateRecordInput{Kind: "totp", Name: "x"})
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrBadKind)
		m.AssertNotCalled(t, "Create")
	})
}

func TestRecordService_Update(t *testing.T) {
	ctx := context.Background()
	m := new(mockRecordRepo)
	svc := newRecordService(m)

	t.Run("replaces only provided fields", func(t *testing.T) {
		m.ExpectedCalls = nil
		existing := &model.SecretRecord{ID: "r1", OwnerID: 7, Kind: model.KindLogin, Name: "Mail", Payload: "old"}
		m.On("GetByIDAndOwner", mock.Anything, int64(7), "r1").Return(existing, nil).Once()
		m.On("Save", mock.Anything, mock.MatchedBy(func(rec *model.SecretRecord) bool {
			return rec.Name == "Mail v2" && rec.Payload == "old" && rec.OwnerID == 7
		})).Return(nil).Once()

		name := "Mail v2"
		rec, err := svc.Update(ctx, 7, "r1", UpdateRecordInput{Name: &name})
		assert.NoError(t, err)
		assert.Equal(t, "Mail v2", rec.Name)
		m.AssertExpectations(t)
	})

	t.Run("not found maps gorm error", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByIDAndOwner", mock.Anything, int64(7), "ghost").Return((*model.SecretRecord)(nil), gorm.ErrRecordNotFound).Once()

		rec, err := svc.Update(ctx, 7, "ghost", UpdateRecordInput{})
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrRecordNotFound)
		m.AssertNotCalled(t, "Save")
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		m.ExpectedCalls = nil
		existing := &model.SecretRecord{ID: "r1", OwnerID: 7, Kind: model.KindLogin}
		m.On("GetByIDAndOwner", mock.Anything, int64(7), "r1").Return(existing, nil).Once()

		bad := model.SecretKind("passport")
		rec, err := svc.Update(ctx, 7, "r1", UpdateRecordInput{Kind: &bad})
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrBadKind)
		m.AssertNotCalled(t, "Save")
	})
}

func TestRecordService_Delete(t *testing.T) {
	ctx := context.Background()
	m := new(mockRecordRepo)
	svc := newRecordService(m)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("DeleteByIDAndOwner", mock.Anything, int64(3), "r9").Return(true, nil).Once()

		assert.NoError(t, svc.Delete(ctx, 3, "r9"))
		m.AssertExpectations(t)
	})

	t.Run("foreign id reported as not found", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("DeleteByIDAndOwner", mock.Anything, int64(4), "r9").Return(false, nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, 4, "r9"), ErrRecordNotFound)
		m.AssertExpectations(t)
	})
}

func TestRecordService_List(t *testing.T) {
	ctx := context.Background()
	m := new(mockRecordRepo)
	svc := newRecordService(m)

	m.On("ListByOwner", mock.Anything, int64(11)).Return([]model.SecretRecord{
		{ID: "a", OwnerID: 11}, {ID: "b", OwnerID: 11},
	}, nil).Once()

	recs, err := svc.List(ctx, 11)
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	m.AssertExpectations(t)
}
