package dbmysql

import (
	"context"
	"errors"
	"fmt"

	"postsched/internal/common"

	"gorm.io/gorm"
)

type AccountRepository interface {
	// EnsureAccount returns the account, creating it on the owner's first
	// touch. The handle is only written at creation; an existing row keeps
	// whatever handle it already has.
	EnsureAccount(ctx context.Context, accountID uint64, handle string) (*Account, error)

	GetAccountByID(ctx context.Context, accountID uint64) (*Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	UpdatePreferences(ctx context.Context, accountID uint64, positiveSentiment, correctSpelling bool) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) EnsureAccount(ctx context.Context, accountID uint64, handle string) (*Account, error) {
	account := Account{AccountID: accountID, Handle: handle}
	err := r.db.WithContext(ctx).
		Where(Account{AccountID: accountID}).
		FirstOrCreate(&account).Error
	if err != nil {
		return nil, fmt.Errorf("failed to ensure account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) GetAccountByID(ctx context.Context, accountID uint64) (*Account, error) {
	var account Account
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := r.db.WithContext(ctx).Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) UpdatePreferences(ctx context.Context, accountID uint64, positiveSentiment, correctSpelling bool) error {
	err := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_id = ?", accountID).
		Updates(map[string]interface{}{
			"require_positive_sentiment": positiveSentiment,
			"require_correct_spelling":   correctSpelling,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	return nil
}
