package dbmysql

import (
	"time"
)

// Account is the owner of posts and schedule entries. Preference flags are
// advisory and never gate scheduling.
type Account struct {
	AccountID                uint64    `gorm:"primaryKey;column:account_id;autoIncrement" json:"account_id"`
	Handle                   string    `gorm:"column:handle;uniqueIndex;size:50;not null" json:"handle"`
	RequirePositiveSentiment bool      `gorm:"column:require_positive_sentiment;default:false" json:"require_positive_sentiment"`
	RequireCorrectSpelling   bool      `gorm:"column:require_correct_spelling;default:false" json:"require_correct_spelling"`
	CreatedAt                time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
