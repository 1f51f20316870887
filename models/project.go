package models

import "time"

// Project is a portfolio entry created by a user. CreatedByID is set at
// creation from the resolved principal and never reassigned.
type Project struct {
	ID          uint64    `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	URL         string    `gorm:"column:url" json:"url,omitempty"`
	DemoURL     string    `gorm:"column:demo_url" json:"demoUrl,omitempty"`
	TechStack   string    `gorm:"column:tech_stack" json:"techStack"`
	CreatedByID uint64    `gorm:"column:created_by_id;index" json:"createdById"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Project) TableName() string { return "projects" }
