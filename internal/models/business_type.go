package models

import (
	"time"
)

// FieldType is the declared data type of a configurable field
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeTextarea FieldType = "textarea"
)

// FieldDefinition describes one configurable field of an entity type
type FieldDefinition struct {
	Name     string    `json:"name" bson:"name"`
	Label    string    `json:"label" bson:"label"`
	Type     FieldType `json:"type" bson:"type"`
	Required bool      `json:"required" bson:"required"`
	Enabled  bool      `json:"enabled" bson:"enabled"`
}

// BusinessType is a shared template of field definitions. Tenants
// that select the same business type share its dynamic fields.
type BusinessType struct {
	ID        string    `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`

	Name           string            `json:"name" bson:"name"`
	Fields         []FieldDefinition `json:"fields" bson:"fields"`
	CustomerFields []FieldDefinition `json:"customerFields" bson:"customerFields"`
}

// FieldRequestStatus tracks the approval state of a field request
type FieldRequestStatus string

const (
	FieldRequestPending  FieldRequestStatus = "pending"
	FieldRequestApproved FieldRequestStatus = "approved"
	FieldRequestRejected FieldRequestStatus = "rejected"
)

// FieldRequest is a tenant's request to add a dynamic field to its
// business-type template, pending administrative approval.
type FieldRequest struct {
	ID        string    `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`

	TenantID       string             `json:"tenantId" bson:"tenantId"`
	BusinessTypeID string             `json:"businessTypeId" bson:"businessTypeId"`
	Entity         string             `json:"entity" bson:"entity"` // product | customer
	Field          FieldDefinition    `json:"field" bson:"field"`
	Status         FieldRequestStatus `json:"status" bson:"status"`
}
