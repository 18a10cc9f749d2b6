package models

import (
	"time"
)

// User represents an account that can sign in. Admin users have no
// tenant; tenant users carry the tenant they operate on.
type User struct {
	ID        string    `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`

	Email        string `json:"email" bson:"email"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"-" bson:"passwordHash"`

	IsAdmin  bool   `json:"isAdmin" bson:"isAdmin"`
	IsActive bool   `json:"isActive" bson:"isActive"`
	TenantID string `json:"tenantId,omitempty" bson:"tenantId,omitempty"`

	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	Settings    Variables  `json:"settings,omitempty" bson:"settings,omitempty"`
}
