package dbmysql

import (
	"context"
	"errors"
	"fmt"

	"postsched/internal/common"

	"golang.org/x/oauth2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CredentialRepository interface {
	// TokenForOwner returns the owner's remote token or common.ErrNotFound
	// when the account never connected, or disconnected, the platform.
	TokenForOwner(ctx context.Context, ownerID uint64) (*oauth2.Token, error)

	UpsertCredential(ctx context.Context, cred *Credential) error
	DeleteForOwner(ctx context.Context, ownerID uint64) error
}

type credentialRepository struct {
	db       *gorm.DB
	provider string
}

func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db, provider: "twitter"}
}

func (r *credentialRepository) TokenForOwner(ctx context.Context, ownerID uint64) (*oauth2.Token, error) {
	var cred Credential
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND provider = ?", ownerID, r.provider).
		First(&cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	token := &oauth2.Token{AccessToken: cred.AccessToken}
	if cred.RefreshToken != nil {
		token.RefreshToken = *cred.RefreshToken
	}
	if cred.Expiry != nil {
		token.Expiry = *cred.Expiry
	}
	return token, nil
}

func (r *credentialRepository) UpsertCredential(ctx context.Context, cred *Credential) error {
	if cred.Provider == "" {
		cred.Provider = r.provider
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{"access_token", "refresh_token", "expiry"}),
		}).
		Create(cred).Error
	if err != nil {
		return fmt.Errorf("failed to upsert credential: %w", err)
	}
	return nil
}

func (r *credentialRepository) DeleteForOwner(ctx context.Context, ownerID uint64) error {
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND provider = ?", ownerID, r.provider).
		Delete(&Credential{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
