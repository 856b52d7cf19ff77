package model

import "time"

// Comment is immutable once created; there is no update or delete path.
type Comment struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID     int64     `gorm:"not null;index" json:"task_id"`
	Text       string    `gorm:"not null" json:"text"`
	AuthorID   int64     `gorm:"not null" json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}
