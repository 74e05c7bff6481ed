package account

import (
	"context"
	"strings"
	"time"

	"postsched/internal/common"
	"postsched/internal/dbmysql"

	log "github.com/sirupsen/logrus"
)

// Service owns the account row and its remote credential. Accounts are
// created lazily: the first schedule or sync touch provisions the row, so
// no signup step exists ahead of it.
type Service interface {
	// Ensure returns the account, creating it on first touch.
	Ensure(ctx context.Context, accountID uint64, handle string) (*dbmysql.Account, error)

	Preferences(ctx context.Context, accountID uint64) (*dbmysql.Account, error)
	UpdatePreferences(ctx context.Context, accountID uint64, handle string, positiveSentiment, correctSpelling bool) (*dbmysql.Account, error)

	// Connect stores the owner's remote platform token; Disconnect removes
	// it, after which publish and sync report the account as not connected.
	Connect(ctx context.Context, ownerID uint64, handle, accessToken, refreshToken string, expiry *time.Time) error
	Disconnect(ctx context.Context, ownerID uint64) error
}

type service struct {
	accountRepo dbmysql.AccountRepository
	credRepo    dbmysql.CredentialRepository
}

func NewService(accountRepo dbmysql.AccountRepository, credRepo dbmysql.CredentialRepository) Service {
	return &service{accountRepo: accountRepo, credRepo: credRepo}
}

func (s *service) Ensure(ctx context.Context, accountID uint64, handle string) (*dbmysql.Account, error) {
	return s.accountRepo.EnsureAccount(ctx, accountID, handle)
}

func (s *service) Preferences(ctx context.Context, accountID uint64) (*dbmysql.Account, error) {
	return s.accountRepo.GetAccountByID(ctx, accountID)
}

func (s *service) UpdatePreferences(ctx context.Context, accountID uint64, handle string, positiveSentiment, correctSpelling bool) (*dbmysql.Account, error) {
	account, err := s.accountRepo.EnsureAccount(ctx, accountID, handle)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdatePreferences(ctx, accountID, positiveSentiment, correctSpelling); err != nil {
		return nil, err
	}

	account.RequirePositiveSentiment = positiveSentiment
	account.RequireCorrectSpelling = correctSpelling
	return account, nil
}

func (s *service) Connect(ctx context.Context, ownerID uint64, handle, accessToken, refreshToken string, expiry *time.Time) error {
	if strings.TrimSpace(accessToken) == "" {
		return &common.ValidationError{Field: "access_token", Reason: "must not be empty"}
	}

	if _, err := s.accountRepo.EnsureAccount(ctx, ownerID, handle); err != nil {
		return err
	}

	cred := &dbmysql.Credential{
		OwnerID:     ownerID,
		AccessToken: accessToken,
		Expiry:      expiry,
	}
	if refreshToken != "" {
		cred.RefreshToken = &refreshToken
	}
	if err := s.credRepo.UpsertCredential(ctx, cred); err != nil {
		return err
	}

	log.WithField("owner_id", ownerID).Info("remote credential connected")
	return nil
}

func (s *service) Disconnect(ctx context.Context, ownerID uint64) error {
	if err := s.credRepo.DeleteForOwner(ctx, ownerID); err != nil {
		return err
	}
	log.WithField("owner_id", ownerID).Info("remote credential disconnected")
	return nil
}
