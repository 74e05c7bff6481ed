package dbmysql

import (
	"time"
)

// Post is a unit of content, either still waiting on its schedule entry or
// already accepted by the remote platform. RemoteID is set exactly once, at
// publish time or at sync-insertion, and is unique per owner.
type Post struct {
	PostID      uint64     `gorm:"primaryKey;autoIncrement;column:post_id" json:"post_id"`
	OwnerID     uint64     `gorm:"column:owner_id;not null;uniqueIndex:idx_owner_remote" json:"owner_id"`
	RemoteID    *string    `gorm:"column:remote_id;size:64;uniqueIndex:idx_owner_remote" json:"remote_id,omitempty"`
	Text        string     `gorm:"column:text;size:140;not null" json:"text"`
	Sentiment   string     `gorm:"type:ENUM('p','n','u');default:'u';column:sentiment" json:"sentiment"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
	IsPublished bool       `gorm:"column:is_published;default:false" json:"is_published"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Owner Account `gorm:"foreignKey:OwnerID;references:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

// ScheduleEntry is a pending intent to publish its Post at FireAt. At most
// one live dispatcher job is associated with an entry at any time; JobToken
// is nil only between record creation and job submission.
type ScheduleEntry struct {
	EntryID   uint64    `gorm:"primaryKey;autoIncrement;column:entry_id" json:"entry_id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex" json:"post_id"`
	OwnerID   uint64    `gorm:"column:owner_id;not null;index" json:"owner_id"`
	FireAt    time.Time `gorm:"column:fire_at;not null" json:"fire_at"`
	JobToken  *string   `gorm:"column:job_token;size:64" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Post Post `gorm:"foreignKey:PostID;references:PostID;constraint:OnDelete:CASCADE" json:"post"`
}

// SyncCursor tracks when reconciliation last completed per owner. The zero
// LastSyncedAt means the first pass is always eligible.
type SyncCursor struct {
	OwnerID      uint64    `gorm:"primaryKey;column:owner_id" json:"owner_id"`
	LastSyncedAt time.Time `gorm:"column:last_synced_at" json:"last_synced_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// Credential holds an owner's remote platform token, written by the account
// connection flow and read at execute/sync time.
type Credential struct {
	CredentialID uint64     `gorm:"primaryKey;autoIncrement;column:credential_id" json:"credential_id"`
	OwnerID      uint64     `gorm:"column:owner_id;not null;uniqueIndex:idx_owner_provider" json:"owner_id"`
	Provider     string     `gorm:"column:provider;size:32;not null;default:'twitter';uniqueIndex:idx_owner_provider" json:"provider"`
	AccessToken  string     `gorm:"column:access_token;size:255;not null" json:"-"`
	RefreshToken *string    `gorm:"column:refresh_token;size:255" json:"-"`
	Expiry       *time.Time `gorm:"column:expiry" json:"expiry,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Owner Account `gorm:"foreignKey:OwnerID;references:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}
