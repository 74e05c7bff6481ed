package dbmysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"postsched/internal/common"

	"gorm.io/gorm"
)

type ScheduleEntryRepository interface {
	// CreateWithPost writes the post and its entry in one transaction,
	// both-or-neither.
	CreateWithPost(ctx context.Context, post *Post, fireAt time.Time) (*ScheduleEntry, error)

	// GetForOwner loads a live entry with its post. Returns
	// common.ErrNotFound both for missing entries and for entries owned by
	// someone else.
	GetForOwner(ctx context.Context, entryID, ownerID uint64) (*ScheduleEntry, error)

	SetJobToken(ctx context.Context, entryID uint64, token string) error

	// UpdateSchedule rewrites the post text and fire time in one transaction.
	UpdateSchedule(ctx context.Context, entry *ScheduleEntry, text string, sentiment string, fireAt time.Time) error

	// CompletePublish marks the post published and deletes the entry in one
	// transaction, so a crash cannot leave a published post with a live entry.
	CompletePublish(ctx context.Context, entry *ScheduleEntry, remoteID string, publishedAt time.Time) error

	// DeleteWithPost removes the entry and its unpublished post. Used to
	// unwind a creation whose job submission failed.
	DeleteWithPost(ctx context.Context, entry *ScheduleEntry) error
}

type scheduleEntryRepository struct {
	db *gorm.DB
}

func NewScheduleEntryRepository(db *gorm.DB) ScheduleEntryRepository {
	return &scheduleEntryRepository{db: db}
}

func (r *scheduleEntryRepository) CreateWithPost(ctx context.Context, post *Post, fireAt time.Time) (*ScheduleEntry, error) {
	entry := &ScheduleEntry{
		OwnerID: post.OwnerID,
		FireAt:  fireAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		entry.PostID = post.PostID
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule entry: %w", err)
	}

	entry.Post = *post
	return entry, nil
}

func (r *scheduleEntryRepository) GetForOwner(ctx context.Context, entryID, ownerID uint64) (*ScheduleEntry, error) {
	var entry ScheduleEntry
	err := r.db.WithContext(ctx).
		Preload("Post").
		Where("entry_id = ? AND owner_id = ?", entryID, ownerID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get schedule entry: %w", err)
	}
	return &entry, nil
}

func (r *scheduleEntryRepository) SetJobToken(ctx context.Context, entryID uint64, token string) error {
	err := r.db.WithContext(ctx).
		Model(&ScheduleEntry{}).
		Where("entry_id = ?", entryID).
		Update("job_token", token).Error
	if err != nil {
		return fmt.Errorf("failed to store job token: %w", err)
	}
	return nil
}

func (r *scheduleEntryRepository) UpdateSchedule(ctx context.Context, entry *ScheduleEntry, text string, sentiment string, fireAt time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Post{}).
			Where("post_id = ?", entry.PostID).
			Updates(map[string]interface{}{"text": text, "sentiment": sentiment}).Error; err != nil {
			return err
		}
		return tx.Model(&ScheduleEntry{}).
			Where("entry_id = ?", entry.EntryID).
			Update("fire_at", fireAt).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}

	entry.FireAt = fireAt
	entry.Post.Text = text
	entry.Post.Sentiment = sentiment
	return nil
}

func (r *scheduleEntryRepository) CompletePublish(ctx context.Context, entry *ScheduleEntry, remoteID string, publishedAt time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Post{}).
			Where("post_id = ?", entry.PostID).
			Updates(map[string]interface{}{
				"remote_id":    remoteID,
				"published_at": publishedAt,
				"is_published": true,
			}).Error; err != nil {
			return err
		}
		return tx.Delete(&ScheduleEntry{}, entry.EntryID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to complete publish: %w", err)
	}
	return nil
}

func (r *scheduleEntryRepository) DeleteWithPost(ctx context.Context, entry *ScheduleEntry) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ScheduleEntry{}, entry.EntryID).Error; err != nil {
			return err
		}
		return tx.Delete(&Post{}, entry.PostID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	return nil
}
