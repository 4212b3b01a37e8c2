package handlers_test

import (
	"VoltVault/internal/auth"
	"VoltVault/internal/config"
	"VoltVault/internal/handlers"
	"VoltVault/internal/model"
	"VoltVault/internal/repo"
	"VoltVault/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// Minimal mocks
type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error) {
	args := m.Called(ctx, account)
	if a, ok := args.Get(0).(*model.Account); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) GetAccountByHandle(ctx context.Context, handle string) (*model.Account, error) {
	args := m.Called(ctx, handle)
	if a, ok := args.Get(0).(*model.Account); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.AccountRepository = (*mockAccountRepo)(nil)

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

// --- Helpers ---

// newTestRouter собирает полный роутер с моками репозиториев.
func newTestRouter(t *testing.T, ar repo.AccountRepository, rr repo.RecordRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret}
	logger := zap.NewNop().Sugar()

	accountSvc := service.NewAccountService(ar)
	recordSvc := service.NewRecordService(rr, logger)

	h := handlers.NewHandler(accountSvc, recordSvc, logger, cfg)
	return h.Router
}

// addBearer выписывает валидный токен и ставит его в заголовок запроса.
func addBearer(t *testing.T, req *http.Request, accountID int64) {
	t.Helper()
	token, err := auth.BuildToken(accountID, testSecret)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func doRequest(t *testing.T, router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
