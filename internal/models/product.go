package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is an inventory item in a tenant database. The static
// fields are typed; business-type extension fields live in Attributes
// and are validated against the resolved field list at the boundary.
type Product struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`

	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	CostPrice float64 `json:"costPrice" bson:"costPrice"`
	Stock     float64 `json:"stock" bson:"stock"`
	MinStock  float64 `json:"minStock" bson:"minStock"`

	Attributes Variables `json:"attributes,omitempty" bson:"attributes,omitempty"`
}

// LowStock reports whether the product is at or below its minimum.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
