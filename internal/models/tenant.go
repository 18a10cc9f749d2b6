package models

import (
	"time"
)

// TenantStatus represents the lifecycle state of a tenant
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
)

// Tenant represents an isolated store/organization account.
// Tenants live in the shared registry database; all of a tenant's
// business data lives in its own logical database.
type Tenant struct {
	ID        string    `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`

	Name         string       `json:"name" bson:"name"`
	Plan         string       `json:"plan" bson:"plan"`
	BusinessType string       `json:"businessType" bson:"businessType"`
	Status       TenantStatus `json:"status" bson:"status"`

	// Contact
	OwnerEmail string `json:"ownerEmail,omitempty" bson:"ownerEmail,omitempty"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address    string `json:"address,omitempty" bson:"address,omitempty"`
}

// Plan represents a subscription plan shared across tenants
type Plan struct {
	ID              string   `json:"id" bson:"_id"`
	Name            string   `json:"name" bson:"name"`
	AllowedFeatures []string `json:"allowedFeatures" bson:"allowedFeatures"`
	Price           float64  `json:"price" bson:"price"`
}

// HasFeature reports whether the plan enables the named feature.
func (p *Plan) HasFeature(name string) bool {
	for _, f := range p.AllowedFeatures {
		if f == name {
			return true
		}
	}
	return false
}
