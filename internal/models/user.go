package models

import "time"

// User represents an investor account. Every property, assumption set, and
// analysis snapshot is scoped to its owning user.
type User struct {
	Base
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	Properties []Property `gorm:"foreignKey:UserID" json:"properties,omitempty"`
}
