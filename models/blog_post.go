package models

import "time"

// BlogPost is a post authored by a user. AuthorID is set at creation from the
// resolved principal and never reassigned.
type BlogPost struct {
	ID        uint64     `gorm:"column:id;primaryKey" json:"id"`
	Title     string     `gorm:"column:title" json:"title"`
	Content   string     `gorm:"column:content" json:"content"`
	Tags      StringList `gorm:"column:tags" json:"tags"`
	AuthorID  uint64     `gorm:"column:author_id;index" json:"authorId"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

func (BlogPost) TableName() string { return "blog_posts" }
