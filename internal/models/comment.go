package models

import (
	"time"

	"github.com/lib/pq"
)

// Comment is the single persisted entity of the board. ParentID is nil for
// top-level comments and carries another comment's ID for replies. Deleting a
// parent leaves its replies in place with their original parent_id.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Author    string         `gorm:"size:150;not null;default:'Admin'" json:"author"`
	Likes     int            `gorm:"not null;default:0" json:"likes"`
	Images    pq.StringArray `gorm:"type:text[]" json:"images"`
	ParentID  *uint          `gorm:"index" json:"parent_id"`
	Pinned    bool           `gorm:"not null;default:false" json:"pinned"`
	Status    string         `gorm:"size:50" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
