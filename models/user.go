package models

import "time"

// User is a registered account. Roles hold the canonical storage form
// (bare names, no transport prefix).
type User struct {
	ID           uint64     `gorm:"column:id;primaryKey" json:"id"`
	Username     string     `gorm:"column:username;uniqueIndex" json:"username"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	Email        string     `gorm:"column:email;uniqueIndex" json:"email"`
	Bio          string     `gorm:"column:bio" json:"bio,omitempty"`
	LinkedinURL  string     `gorm:"column:linkedin_url" json:"linkedinUrl,omitempty"`
	GithubURL    string     `gorm:"column:github_url" json:"githubUrl,omitempty"`
	Roles        StringList `gorm:"column:roles" json:"roles"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string { return "users" }
