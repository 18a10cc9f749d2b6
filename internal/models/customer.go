package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer lives in a tenant database. The contact fields are fixed
// in the UI; everything the business type configures goes in
// Attributes.
type Customer struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`

	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`

	Attributes Variables `json:"attributes,omitempty" bson:"attributes,omitempty"`
}
