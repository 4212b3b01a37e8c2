package service

import (
	"VoltVault/internal/model"
	"VoltVault/internal/repo"
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrHandleTaken — регистрация с уже занятым handle.
	ErrHandleTaken = errors.New("handle already taken")
	// ErrAccountNotFound — вход с несуществующим handle.
	// Наружу хендлер отдаёт тот же ответ, что и при неверном секрете.
	ErrAccountNotFound = errors.New("account not found")
	// ErrWrongSecret — вход с неверным секретом.
	ErrWrongSecret = errors.New("wrong secret")
)

// AccountService инкапсулирует регистрацию и проверку учётных данных.
type AccountService struct {
	repo repo.AccountRepository
}

func NewAccountService(r repo.AccountRepository) *AccountService {
	return &AccountService{repo: r}
}

// Register создаёт учётную запись с bcrypt-хешем секрета.
// Секрет в открытом виде не сохраняется и обратно не восстанавливается.
func (s *AccountService) Register(ctx context.Context, handle, secret string) (*model.Account, error) {
	existing, err := s.repo.GetAccountByHandle(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("checking handle: %w", err)
	}
	if existing != nil {
		return nil, ErrHandleTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing secret: %w", err)
	}

	account, err := s.repo.CreateAccount(ctx, &model.Account{
		Handle:       handle,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}
	return account, nil
}

// Login проверяет пару handle/секрет.
// bcrypt сравнивает дайджесты с постоянной структурой прохода,
// открытые строки напрямую не сравниваются.
func (s *AccountService) Login(ctx context.Context, handle, secret string) (*model.Account, error) {
	account, err := s.repo.GetAccountByHandle(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("looking up handle: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(secret)); err != nil {
		return nil, ErrWrongSecret
	}
	return account, nil
}
