package dbmysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SyncCursorRepository interface {
	// GetCursor returns the owner's cursor, creating a zero one if this is
	// the owner's first reconciliation.
	GetCursor(ctx context.Context, ownerID uint64) (*SyncCursor, error)

	// Advance moves the cursor forward. Only called after a fully successful
	// pass; a failed fetch leaves the cursor alone.
	Advance(ctx context.Context, ownerID uint64, syncedAt time.Time) error
}

type syncCursorRepository struct {
	db *gorm.DB
}

func NewSyncCursorRepository(db *gorm.DB) SyncCursorRepository {
	return &syncCursorRepository{db: db}
}

func (r *syncCursorRepository) GetCursor(ctx context.Context, ownerID uint64) (*SyncCursor, error) {
	cursor := SyncCursor{OwnerID: ownerID}
	err := r.db.WithContext(ctx).FirstOrCreate(&cursor, SyncCursor{OwnerID: ownerID}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get sync cursor: %w", err)
	}
	return &cursor, nil
}

func (r *syncCursorRepository) Advance(ctx context.Context, ownerID uint64, syncedAt time.Time) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_synced_at"}),
		}).
		Create(&SyncCursor{OwnerID: ownerID, LastSyncedAt: syncedAt}).Error
	if err != nil {
		return fmt.Errorf("failed to advance sync cursor: %w", err)
	}
	return nil
}
