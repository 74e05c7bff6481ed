package dbmysql

import (
	"context"
	"errors"
	"fmt"

	"postsched/internal/common"

	"gorm.io/gorm"
)

type PostRepository interface {
	CreatePost(ctx context.Context, post *Post) error

	// GetPostForOwner returns common.ErrNotFound both for missing posts and
	// for posts owned by someone else.
	GetPostForOwner(ctx context.Context, postID, ownerID uint64) (*Post, error)
	ListPostsByOwner(ctx context.Context, ownerID uint64) ([]Post, error)
	RemoteIDSet(ctx context.Context, ownerID uint64) (map[string]struct{}, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) CreatePost(ctx context.Context, post *Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) GetPostForOwner(ctx context.Context, postID, ownerID uint64) (*Post, error) {
	var post Post
	err := r.db.WithContext(ctx).Where("post_id = ? AND owner_id = ?", postID, ownerID).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// ListPostsByOwner returns published posts newest first, then unpublished
// ones by creation time.
func (r *postRepository) ListPostsByOwner(ctx context.Context, ownerID uint64) ([]Post, error) {
	var posts []Post
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("published_at DESC").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// RemoteIDSet loads every remote id already stored for the owner so sync
// dedup is a single query plus map lookups.
func (r *postRepository) RemoteIDSet(ctx context.Context, ownerID uint64) (map[string]struct{}, error) {
	var remoteIDs []string
	err := r.db.WithContext(ctx).
		Model(&Post{}).
		Where("owner_id = ? AND remote_id IS NOT NULL", ownerID).
		Pluck("remote_id", &remoteIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load remote ids: %w", err)
	}

	set := make(map[string]struct{}, len(remoteIDs))
	for _, id := range remoteIDs {
		set[id] = struct{}{}
	}
	return set, nil
}
