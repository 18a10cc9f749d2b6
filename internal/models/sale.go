package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SaleItem is one line of a sale or purchase
type SaleItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	Quantity  float64            `json:"quantity" bson:"quantity"`
	Price     float64            `json:"price" bson:"price"`
}

// Sale is a completed POS transaction in a tenant database
type Sale struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`

	InvoiceNo     string     `json:"invoiceNo" bson:"invoiceNo"`
	CustomerName  string     `json:"customerName,omitempty" bson:"customerName,omitempty"`
	CustomerPhone string     `json:"customerPhone,omitempty" bson:"customerPhone,omitempty"`
	Items         []SaleItem `json:"items" bson:"items"`
	Total         float64    `json:"total" bson:"total"`
	Discount      float64    `json:"discount,omitempty" bson:"discount,omitempty"`
	PaymentMethod string     `json:"paymentMethod" bson:"paymentMethod"`
}

// Purchase is an inbound stock purchase from a supplier
type Purchase struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`

	Supplier string     `json:"supplier" bson:"supplier"`
	Items    []SaleItem `json:"items" bson:"items"`
	Total    float64    `json:"total" bson:"total"`
	Paid     bool       `json:"paid" bson:"paid"`
}
